package cmd

import (
	"fmt"

	"github.com/cratesland/cronexpr"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <expression>",
	Short: "Print the canonical form of an expression",
	Long: `Collapse whitespace runs in an expression to single spaces and trim the
ends. This is the form parse errors quote and the form to store when
expressions are compared textually.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cronexpr.Normalize(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
