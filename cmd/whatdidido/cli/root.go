// Package cli implements the whatdidido command-line interface using
// Cobra. It exposes commands for connecting work-tracking integrations,
// checking their status, and inspecting the stored configuration.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/whatdidido/whatdidido/internal/config"
	"github.com/whatdidido/whatdidido/internal/log"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "whatdidido",
	Short: "Track what you did across your work tools",
	Long: `whatdidido aggregates your activity from the work-tracking services you
use (issue trackers like Jira and Linear, code hosts like GitHub)
behind a single local configuration file.

Start with 'whatdidido connect' to store credentials, then
'whatdidido status' to verify each integration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, _ := config.LoadSettings()
		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      config.DebugDir(),
			RetentionDays: settings.Debug.RetentionDays,
		}); err != nil {
			// Log init failure is non-fatal; commands still run.
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	defer log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "log in JSON format")
}
