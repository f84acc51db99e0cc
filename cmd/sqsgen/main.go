package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/limaJavier/sqsgen/internal/logging"
)

const version = "0.1.0"

var logLevel string

func main() {
	rootCommand := &cobra.Command{
		Use:           "sqsgen",
		Short:         "Search special quasirandom structures on a fixed lattice",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum log level (trace, debug, info, warn, error)")

	rootCommand.AddCommand(newRunCommand())
	rootCommand.AddCommand(newComputeCommand())

	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	return logging.New(logging.ParseLevel(logLevel), true)
}
