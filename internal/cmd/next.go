package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cratesland/cronexpr"
	"github.com/spf13/cobra"
)

// NextCommand wraps cobra.Command with next-specific functionality
type NextCommand struct {
	*cobra.Command
	count int
	from  string
	json  bool
}

// NextFiring represents a single scheduled firing time
type NextFiring struct {
	Number    int    `json:"number"`
	Local     string `json:"local"`
	Timestamp string `json:"timestamp"`
}

// NextResult represents the complete output for the next command
type NextResult struct {
	Expression string       `json:"expression"`
	Timezone   string       `json:"timezone"`
	From       string       `json:"from"`
	Firings    []NextFiring `json:"firings"`
}

func init() {
	rootCmd.AddCommand(newNextCommand().Command)
}

// newNextCommand creates a fresh next command instance for testing
// This avoids state pollution between tests by creating isolated command instances
func newNextCommand() *NextCommand {
	nc := &NextCommand{}
	nc.Command = &cobra.Command{
		Args:  cobra.ExactArgs(1),
		RunE:  nc.runNext,
		Use:   "next <expression>",
		Short: "Show the next firing times of an expression",
		Long: `Calculate and display the next firing times of an extended cron expression.

The firing times are shown as wall-clock times in the expression's own time
zone; the JSON output also carries the corresponding UTC instants.

Examples:
  cronexpr next "*/15 * * * * UTC"                           # Next 10 firings
  cronexpr next "0 18 * * 1-5 Asia/Shanghai" --count 5       # Next 5 firings
  cronexpr next "3 11 31W * * Asia/Shanghai" --json          # JSON output
  cronexpr next "4 2 * * 1L Asia/Shanghai" --from 2024-09-24T00:08:35+08:00`,
	}

	nc.Command.Flags().IntVarP(&nc.count, "count", "c", DefaultNextCount, "Number of firings to show (1-100)")
	nc.Command.Flags().StringVar(&nc.from, "from", "", "Reference instant in RFC 3339 form (default: now)")
	nc.Command.Flags().BoolVarP(&nc.json, "json", "j", false, "Output as JSON")

	return nc
}

func (nc *NextCommand) runNext(_ *cobra.Command, args []string) error {
	expression := args[0]

	if nc.count < MinNextCount {
		return fmt.Errorf("count must be at least %d", MinNextCount)
	}
	if nc.count > MaxNextCount {
		return fmt.Errorf("count must be at most %d", MaxNextCount)
	}

	schedule, err := cronexpr.Parse(expression)
	if err != nil {
		return err
	}

	from := time.Now()
	if nc.from != "" {
		from, err = time.Parse(time.RFC3339, nc.from)
		if err != nil {
			return fmt.Errorf("invalid --from instant: %w", err)
		}
	}

	driver := schedule.Driver(from)
	firings := make([]NextFiring, 0, nc.count)
	for i := 0; i < nc.count; i++ {
		z, err := driver.Next()
		if err != nil {
			return err
		}
		firings = append(firings, NextFiring{
			Number:    i + 1,
			Local:     z.Format(time.RFC3339),
			Timestamp: z.UTC().Format(time.RFC3339),
		})
	}

	if nc.json {
		result := NextResult{
			Expression: schedule.String(),
			Timezone:   schedule.Location().String(),
			From:       from.In(schedule.Location()).Format(time.RFC3339),
			Firings:    firings,
		}
		encoder := json.NewEncoder(nc.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	out := nc.OutOrStdout()
	runs := "runs"
	if nc.count == 1 {
		runs = "run"
	}
	fmt.Fprintf(out, "Next %d %s for %q (%s):\n", nc.count, runs, schedule.String(), schedule.Location())
	for _, firing := range firings {
		fmt.Fprintf(out, "  %d. %s\n", firing.Number, firing.Local)
	}
	return nil
}
