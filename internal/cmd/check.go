package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/cratesland/cronexpr"
	"github.com/cratesland/cronexpr/internal/cronfile"
	"github.com/spf13/cobra"
)

// CheckCommand wraps cobra.Command with check-specific functionality
type CheckCommand struct {
	*cobra.Command
	file string
	json bool
}

// CheckIssue describes one invalid expression
type CheckIssue struct {
	Line       int    `json:"line,omitempty"`
	Expression string `json:"expression"`
	Error      string `json:"error"`
}

// CheckResult represents the complete output for the check command
type CheckResult struct {
	Checked int          `json:"checked"`
	Invalid int          `json:"invalid"`
	Issues  []CheckIssue `json:"issues"`
}

func init() {
	rootCmd.AddCommand(newCheckCommand().Command)
}

func newCheckCommand() *CheckCommand {
	cc := &CheckCommand{}
	cc.Command = &cobra.Command{
		Use:   "check [expression]",
		Short: "Validate expressions or a schedule file",
		Long: `Validate a single extended cron expression or a schedule file.

A schedule file carries one expression per line; blank lines and lines
starting with '#' are ignored. The command exits non-zero when any
expression fails to parse.

Examples:
  cronexpr check "0 0 L * * UTC"             # Validate a single expression
  cronexpr check --file schedules.cron       # Validate a schedule file
  cronexpr check --file schedules.cron --json`,
		RunE: cc.runCheck,
		Args: cobra.MaximumNArgs(1),
	}

	cc.Flags().StringVarP(&cc.file, "file", "f", "", "Path to a schedule file")
	cc.Flags().BoolVarP(&cc.json, "json", "j", false, "Output in JSON format")

	return cc
}

func (cc *CheckCommand) runCheck(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 1 && cc.file != "":
		return fmt.Errorf("pass an expression or --file, not both")
	case len(args) == 1:
		return cc.checkExpression(args[0])
	case cc.file != "":
		return cc.checkFile(cc.file)
	default:
		return fmt.Errorf("an expression or --file is required")
	}
}

func (cc *CheckCommand) checkExpression(expression string) error {
	result := CheckResult{Checked: 1, Issues: []CheckIssue{}}
	if _, err := cronexpr.Parse(expression); err != nil {
		result.Invalid = 1
		result.Issues = append(result.Issues, CheckIssue{
			Expression: cronexpr.Normalize(expression),
			Error:      err.Error(),
		})
	}
	return cc.report(result)
}

func (cc *CheckCommand) checkFile(path string) error {
	entries, err := cronfile.NewReader().ReadFile(path)
	if err != nil {
		return err
	}

	result := CheckResult{Issues: []CheckIssue{}}
	for _, entry := range cronfile.Expressions(entries) {
		result.Checked++
		if entry.Valid {
			continue
		}
		result.Invalid++
		result.Issues = append(result.Issues, CheckIssue{
			Line:       entry.LineNumber,
			Expression: entry.Expression,
			Error:      entry.Error,
		})
	}
	return cc.report(result)
}

func (cc *CheckCommand) report(result CheckResult) error {
	out := cc.OutOrStdout()

	if cc.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		for _, issue := range result.Issues {
			if issue.Line > 0 {
				fmt.Fprintf(out, "line %d: %s\n", issue.Line, issue.Error)
			} else {
				fmt.Fprintln(out, issue.Error)
			}
		}
		fmt.Fprintf(out, "%d checked, %d invalid\n", result.Checked, result.Invalid)
	}

	if result.Invalid > 0 {
		// the message is already reported; fail the command quietly
		cc.SilenceUsage = true
		cc.SilenceErrors = true
		return fmt.Errorf("%d invalid expression(s)", result.Invalid)
	}
	return nil
}
