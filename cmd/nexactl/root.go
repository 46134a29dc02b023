package main

import (
	"github.com/spf13/cobra"

	"nexaterminal/internal/questionbank"
)

type rootOptions struct {
	banksDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nexactl",
		Short: "Nexa Terminal health check tool",
		Long: `nexactl evaluates labour law health checks offline.

It lists the available question banks, prints their questions, scores an
answers file and exports banks as YAML for editing. Extra banks are read
from the directory given by --banks.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.banksDir, "banks", "b", "", "Directory with additional YAML question banks")

	cmd.AddCommand(
		newTopicsCmd(opts),
		newQuestionsCmd(opts),
		newEvaluateCmd(opts),
		newExportCmd(opts),
		newTokenCmd(),
	)
	return cmd
}

func (o *rootOptions) registry() (*questionbank.Registry, error) {
	banks := questionbank.Builtin()
	if o.banksDir != "" {
		extra, err := questionbank.LoadDir(o.banksDir)
		if err != nil {
			return nil, err
		}
		banks = append(banks, extra...)
	}
	return questionbank.NewRegistry(banks...)
}
