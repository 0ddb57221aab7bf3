package main

import (
	"fmt"

	"github.com/spf13/cobra"

	log "github.com/ordmap/ordmap/internal/logging"
	"github.com/ordmap/ordmap/pkg/urlquery"
)

func registerRoundtripCmd(rootCmd *cobra.Command) {
	roundtripCmd := &cobra.Command{
		Use:   "roundtrip <query>",
		Short: "parses and re-encodes a query string, verifying the result matches the input",
		Args:  cobra.ExactArgs(1),
		RunE:  roundtripRun,
	}
	rootCmd.AddCommand(roundtripCmd)
}

func roundtripRun(cmd *cobra.Command, args []string) error {
	params, err := urlquery.Parse(args[0])
	if err != nil {
		return err
	}

	encoded := urlquery.Encode(params)
	if encoded != args[0] {
		log.Warn().Str("input", args[0]).Str("output", encoded).Msg("round-trip drifted; input was not in canonical form")
		return fmt.Errorf("round-trip mismatch: %q != %q", encoded, args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}
