package main

import (
	"github.com/spf13/cobra"

	"nexaterminal/internal/questionbank"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <topic>",
		Short: "Write a bank as YAML to stdout",
		Long: `Write a bank as YAML to stdout. The output can be edited and placed in
the banks directory to override the built-in bank of the same topic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}
			b, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			return questionbank.Export(cmd.OutOrStdout(), b)
		},
	}
}
