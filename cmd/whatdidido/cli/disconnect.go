package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whatdidido/whatdidido/internal/prompt"
	"github.com/whatdidido/whatdidido/internal/provider"
	"github.com/whatdidido/whatdidido/internal/ui"
)

var (
	disconnectAll bool
	disconnectYes bool
)

var disconnectCmd = &cobra.Command{
	Use:   "disconnect [provider]",
	Short: "Remove stored credentials for integrations",
	Long: `Disconnect deletes an integration's keys from the configuration file.
Unrelated keys and comments are preserved.

Examples:
  whatdidido disconnect github       # remove GitHub credentials
  whatdidido disconnect --all        # remove credentials for everything`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDisconnect,
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
	disconnectCmd.Flags().BoolVar(&disconnectAll, "all", false, "disconnect every provider")
	disconnectCmd.Flags().BoolVar(&disconnectYes, "yes", false, "skip the confirmation prompt")
}

func runDisconnect(cmd *cobra.Command, args []string) error {
	var targets []provider.Provider
	switch {
	case disconnectAll:
		targets = provider.All()
	case len(args) == 1:
		p := provider.Get(args[0])
		if p == nil {
			return fmt.Errorf("unknown provider %q (available: %s)",
				args[0], strings.Join(provider.Names(), ", "))
		}
		targets = []provider.Provider{p}
	default:
		return fmt.Errorf("name a provider to disconnect, or pass --all")
	}

	store := openStore()
	raw, err := store.ReadAll()
	if err != nil {
		return err
	}

	var keys []string
	var names []string
	for _, p := range targets {
		schema := p.Schema()
		if !schema.Configured(raw) {
			continue
		}
		keys = append(keys, schema.Keys()...)
		names = append(names, schema.DisplayName)
	}
	if len(keys) == 0 {
		ui.Printf("No configured integrations found to disconnect.\n")
		return nil
	}

	if !disconnectYes {
		ok, err := prompt.Confirm(fmt.Sprintf(
			"Remove stored credentials for %s?", strings.Join(names, ", ")))
		if err != nil {
			return err
		}
		if !ok {
			ui.Printf("Disconnect cancelled.\n")
			return nil
		}
	}

	if err := store.Delete(keys...); err != nil {
		return err
	}
	ui.Successf("Disconnected %s", strings.Join(names, ", "))
	return nil
}
