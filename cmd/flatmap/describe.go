package main

import (
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the key layout of the order mapping as YAML",
	Args:  cobra.NoArgs,
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	s, err := orderSerializer()
	if err != nil {
		return err
	}

	out, err := s.Layout().YAML()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}
