package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nexaterminal/internal/compliance"
	"nexaterminal/internal/model"
)

type evaluateOptions struct {
	answersFile string
	size        string
	company     string
	asJSON      bool
}

func newEvaluateCmd(root *rootOptions) *cobra.Command {
	opts := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate <topic>",
		Short: "Score an answers file against a bank",
		Long: `Score an answers file against a bank and print the report.

The answers file is YAML mapping question ids to answers. Multi-check
questions take a list:

  wt_records: "yes"
  pay_supplements: [overtime, night]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := root.registry()
			if err != nil {
				return err
			}
			b, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			size, ok := model.ParseCompanySize(opts.size)
			if !ok {
				return fmt.Errorf("invalid company size %q (micro, small, medium, large)", opts.size)
			}
			answers, err := readAnswers(opts.answersFile)
			if err != nil {
				return err
			}

			report := compliance.New(b, size, opts.company).Evaluate(answers)

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd, b, &report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.answersFile, "answers", "a", "", "YAML file with the answers")
	cmd.Flags().StringVarP(&opts.size, "size", "s", string(model.CompanyMicro), "Company size (micro|small|medium|large)")
	cmd.Flags().StringVarP(&opts.company, "company", "c", "", "Company name used in the grade description")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func readAnswers(path string) (model.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	answers := model.Answers{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return answers, nil
}

func printReport(cmd *cobra.Command, b *model.Bank, r *model.Report) {
	styles := newPrintStyles()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.header.Render(b.Title))
	fmt.Fprintf(out, "%s %s  %s\n",
		styles.grade(r.GradeClass).Render(fmt.Sprintf("%d%%", r.Percentage)),
		styles.grade(r.GradeClass).Render(r.Grade),
		styles.dim.Render(fmt.Sprintf("(%g / %g)", r.Score, r.MaxScore)))
	fmt.Fprintln(out, r.GradeDescription)

	if len(r.Categories) > 0 {
		fmt.Fprintf(out, "\n%s\n", styles.header.Render("Категории"))
		for _, c := range r.Categories {
			fmt.Fprintf(out, "  %-40s %g / %g  %s\n", c.DisplayName, c.Score, c.MaxScore,
				styles.dim.Render(fmt.Sprintf("%d одговори, %d прекршувања", c.Answered, c.Violations)))
		}
	}

	if len(r.Violations) > 0 {
		fmt.Fprintf(out, "\n%s\n", styles.header.Render("Прекршувања"))
		for _, v := range r.Violations {
			style := styles.warn
			if v.Severity == model.SanctionHigh {
				style = styles.bad
			}
			fmt.Fprintf(out, "  %s %s\n", style.Render(v.QuestionID), v.Question)
			fmt.Fprintf(out, "    %s\n", v.Finding)
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintf(out, "\n%s\n", styles.header.Render("Препораки"))
		for _, rec := range r.Recommendations {
			fmt.Fprintf(out, "  • %s\n", rec)
		}
	}
}
