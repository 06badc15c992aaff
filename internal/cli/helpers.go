package cli

import (
	"fmt"
	"strconv"

	"github.com/byteshard/gf256/pkg/gf256"
)

// parseElement parses a field element written as a decimal, 0x-hex,
// 0o-octal or 0b-binary byte.
func parseElement(arg string) (gf256.Element, error) {
	b, err := parseByte(arg)
	if err != nil {
		return gf256.Element{}, err
	}
	return gf256.FromByte(b), nil
}

func parseByte(arg string) (byte, error) {
	v, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q: %w", arg, err)
	}
	return byte(v), nil
}
