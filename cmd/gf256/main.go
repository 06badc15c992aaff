package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/byteshard/gf256/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "gf256",
		Short: "Arithmetic over the finite field with 256 elements",
		Long: `gf256 exposes GF(2^8) arithmetic from the command line.

A field element is a single byte; addition and subtraction are bitwise
XOR, while multiplication and division run through precomputed
discrete-log tables over the generator x. This is the arithmetic that
underlies Reed-Solomon codes, Shamir secret sharing, and AES-style
byte mixing.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewDemoCommand(),
		cli.NewEvalCommand(),
		cli.NewTablesCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
