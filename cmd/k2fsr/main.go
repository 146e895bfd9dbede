package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hassy0430/K2/internal/cli"
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
		Use:   "k2fsr",
		Short: "KCipher-2 FSR-A register simulator",
		Long: `k2fsr simulates the FSR-A stage of the KCipher-2 stream cipher.

The alpha_0 substitution table is built over GF(2^8) from the beta
primitive polynomial, then the 5-word feedback shift register is
stepped 64 times from its fixed initial state, reproducing the
reference state sequence bit for bit.

All cipher parameters (polynomials, exponents, initial state, step
count) are fixed constants; flags affect presentation only.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewSimulateCommand(),
		cli.NewTableCommand(),
		cli.NewCoefficientsCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
