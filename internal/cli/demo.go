package cli

import (
	"fmt"

	"github.com/byteshard/gf256/pkg/gf256"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run two sample field computations",
		Long: `Construct the elements 3 and 4, add them, divide them, and print
both results. Over GF(256) the sum is the XOR 3 ^ 4 = 7, while the
quotient goes through the discrete-log tables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			a := gf256.FromByte(3)
			b := gf256.FromByte(4)

			c := a.Add(b)
			d, err := a.Div(b)
			if err != nil {
				return fmt.Errorf("dividing %s by %s: %w", a, b, err)
			}

			cyan := color.New(color.FgCyan)
			cyan.Fprintf(out, "a = %s, b = %s\n", a, b)
			fmt.Fprintf(out, "c = a + b = %s\n", c)
			fmt.Fprintf(out, "d = a / b = %s\n", d)

			return nil
		},
	}

	return cmd
}
