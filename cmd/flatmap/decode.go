package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"flatmap/mapping"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [query]",
	Short: "Decode a URL-encoded query into an order",
	Long: `Decode a URL-encoded query (argument or stdin) into an order.

The order is printed as YAML, or as a Go value dump with --dump.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

var decodeDump bool

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&decodeDump, "dump", false, "dump the decoded Go value instead of YAML")
}

func runDecode(cmd *cobra.Command, args []string) error {
	s, err := orderSerializer()
	if err != nil {
		return err
	}

	query, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	store, err := mapping.ParseStore(query)
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	logger.Debug().Int("keys", len(store)).Msg("decoding")

	order, err := s.Deserialize(store)
	if err != nil {
		return err
	}

	if decodeDump {
		spew.Fdump(cmd.OutOrStdout(), order)
		return nil
	}

	out, err := yaml.Marshal(order)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}
