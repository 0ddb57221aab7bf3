package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	log "github.com/ordmap/ordmap/internal/logging"
	"github.com/ordmap/ordmap/pkg/ordmap"
	"github.com/ordmap/ordmap/pkg/urlquery"
)

func registerParseCmd(rootCmd *cobra.Command) {
	parseCmd := &cobra.Command{
		Use:   "parse <query>",
		Short: "parses a query string and prints its entries in order",
		Args:  cobra.ExactArgs(1),
		RunE:  parseRun,
	}
	parseCmd.Flags().String("dedupe", "", `keep a single entry per key ("first" or "last")`)
	parseCmd.Flags().Bool("json", false, "emit entries as a JSON array of pairs")
	rootCmd.AddCommand(parseCmd)
}

func parseRun(cmd *cobra.Command, args []string) error {
	params, err := urlquery.Parse(args[0])
	if err != nil {
		return err
	}
	log.Debug().Int("entries", params.Len()).Int("keys", params.KeyLen()).Msg("parsed query string")

	modeName, err := cmd.Flags().GetString("dedupe")
	if err != nil {
		return err
	}
	if modeName != "" {
		mode, err := ordmap.ParseDedupMode(modeName)
		if err != nil {
			return err
		}
		if err := params.Deduplicate(mode); err != nil {
			return err
		}
		log.Debug().Stringer("mode", mode).Int("entries", params.Len()).Msg("deduplicated")
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON {
		pairs := make([][2]string, 0, params.Len())
		for key, param := range params.All() {
			pairs = append(pairs, [2]string{key, param.Value})
		}
		encoded, err := json.Marshal(pairs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	for key, param := range params.All() {
		if param.Bare {
			fmt.Fprintln(cmd.OutOrStdout(), key)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, param.Value)
	}
	return nil
}
