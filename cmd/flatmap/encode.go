package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"flatmap/store"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode an order read from YAML into flat keys",
	Long: `Encode an order read from a YAML file (or stdin) into flat keys.

Keys are printed one per line, or as a single URL-encoded query with --query.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

var encodeQuery bool

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().BoolVar(&encodeQuery, "query", false, "print a URL-encoded query")
}

func runEncode(cmd *cobra.Command, args []string) error {
	s, err := orderSerializer()
	if err != nil {
		return err
	}

	var data []byte

	if len(args) > 0 && args[0] != "-" {
		if data, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("failed to read order file %s: %w", args[0], err)
		}
	} else {
		in, err := readInput(cmd, nil)
		if err != nil {
			return err
		}

		data = []byte(in)
	}

	var order store.Order
	if err := yaml.Unmarshal(data, &order); err != nil {
		return fmt.Errorf("failed to parse order YAML: %w", err)
	}

	flat, err := s.Serialize(order)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if encodeQuery {
		_, err = fmt.Fprintln(w, flat.Encode())
		return err
	}

	for _, k := range flat.Keys() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, flat[k]); err != nil {
			return err
		}
	}

	return nil
}
