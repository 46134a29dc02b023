package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexaterminal/internal/model"
)

func newTopicsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the available question banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}
			styles := newPrintStyles()
			out := cmd.OutOrStdout()
			for _, topic := range reg.Topics() {
				b, err := reg.Get(topic)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s %s\n",
					styles.header.Render(topic),
					b.Title,
					styles.dim.Render(fmt.Sprintf("(%d questions)", len(b.Questions))))
			}
			return nil
		},
	}
}

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "questions <topic>",
		Short: "Print the questions of a bank grouped by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}
			b, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			styles := newPrintStyles()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.header.Render(b.Title))
			for _, cat := range b.Categories() {
				fmt.Fprintf(out, "\n%s\n", styles.header.Render(b.CategoryName(cat)))
				for _, q := range b.Questions {
					if q.Category != cat {
						continue
					}
					fmt.Fprintf(out, "  %s %s\n", styles.dim.Render(q.ID), q.Text)
					fmt.Fprintf(out, "    %s\n", styles.dim.Render(fmt.Sprintf("%s, %s", q.Type, q.Article)))
					printOptions(cmd, q, styles)
				}
			}
			return nil
		},
	}
}

func printOptions(cmd *cobra.Command, q model.Question, styles printStyles) {
	out := cmd.OutOrStdout()
	if q.Type == model.AnswerTypeYesNo {
		fmt.Fprintf(out, "    %s\n", styles.dim.Render("yes | no | partially | not_applicable"))
		return
	}
	for _, o := range q.Options {
		fmt.Fprintf(out, "    - %s: %s\n", o.Value, o.Text)
	}
}
