package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cronexpr",
	Short: "cronexpr - work with zone-aware extended cron expressions",
	Long: `cronexpr parses extended cron expressions and computes their firing times.

An expression has five time fields plus a trailing IANA time zone, e.g.
"0 18 * * 1-5 Asia/Shanghai". Quartz-style constructs (L, W, #) are supported
in the day fields.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommand is specified
		_ = cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetOutput sets the output and error writers for the root command
func SetOutput(out, err interface{}) {
	if w, ok := out.(interface{ Write([]byte) (int, error) }); ok {
		rootCmd.SetOut(w)
	}
	if w, ok := err.(interface{ Write([]byte) (int, error) }); ok {
		rootCmd.SetErr(w)
	}
}
