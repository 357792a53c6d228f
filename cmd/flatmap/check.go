package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"flatmap/mapping"
)

var checkCmd = &cobra.Command{
	Use:   "check [query]",
	Short: "Report unknown keys and missing mandatory keys of a query",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var errKeyProblems = errors.New("query does not fit the order mapping")

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	report := s.Check(store)
	if report.OK() {
		fmt.Fprintln(cmd.OutOrStdout(), "all keys are mapped")
		return nil
	}

	for _, p := range report.Problems {
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
	}

	return fmt.Errorf("%w: %d problem(s)", errKeyProblems, len(report.Problems))
}
