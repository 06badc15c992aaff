package cli

import (
	"fmt"

	"github.com/byteshard/gf256/pkg/gf256"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewTablesCommand() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print a field lookup table as a 16x16 hex grid",
		Long: `Print one of the field's derived tables.

  exp   x^i for each exponent i (exp[255] wraps back to 1)
  log   discrete logarithm of each nonzero value (zero is undefined)
  inv   multiplicative inverse of each nonzero value (zero is undefined)

Rows and columns index the high and low nibble of the input byte.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := tableCell(table)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := color.New(color.FgYellow)

			header.Fprint(out, "    ")
			for lo := 0; lo < 16; lo++ {
				header.Fprintf(out, " _%x", lo)
			}
			fmt.Fprintln(out)

			for hi := 0; hi < 16; hi++ {
				header.Fprintf(out, "%x_  ", hi)
				for lo := 0; lo < 16; lo++ {
					fmt.Fprintf(out, " %s", cell(byte(hi<<4|lo)))
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&table, "table", "t", "exp", "Table to print: exp, log, or inv")

	return cmd
}

// tableCell returns a formatter for one entry of the chosen table.
// Undefined entries (log and inv at zero) render as "--".
func tableCell(table string) (func(b byte) string, error) {
	switch table {
	case "exp":
		return func(b byte) string {
			return fmt.Sprintf("%02x", gf256.PowX(b).Byte())
		}, nil
	case "log":
		return func(b byte) string {
			l, ok := gf256.FromByte(b).Log()
			if !ok {
				return "--"
			}
			return fmt.Sprintf("%02x", l)
		}, nil
	case "inv":
		return func(b byte) string {
			inv, ok := gf256.FromByte(b).Inv()
			if !ok {
				return "--"
			}
			return fmt.Sprintf("%02x", inv.Byte())
		}, nil
	default:
		return nil, fmt.Errorf("unknown table %q: expected exp, log, or inv", table)
	}
}
