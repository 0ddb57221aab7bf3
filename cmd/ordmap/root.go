package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	log "github.com/ordmap/ordmap/internal/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "ordmap",
		Short:             "Order-preserving query string tooling",
		Long:              "Parses, deduplicates and reconstructs URL query strings without losing duplicate keys or their order",
		SilenceUsage:      true,
		PersistentPreRunE: loggingPreRunE,
	}

	rootCmd.PersistentFlags().String("log-level", "info", `verbosity of logging ("trace", "debug", "info", "warn", "error")`)

	registerParseCmd(rootCmd)
	registerRoundtripCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func loggingPreRunE(cmd *cobra.Command, _ []string) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.SetGlobalLogger(logger.Level(level))
	return nil
}
