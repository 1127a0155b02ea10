package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whatdidido/whatdidido/internal/config"
	"github.com/whatdidido/whatdidido/internal/envfile"
	"github.com/whatdidido/whatdidido/internal/log"
	"github.com/whatdidido/whatdidido/internal/prompt"
	"github.com/whatdidido/whatdidido/internal/provider"
	"github.com/whatdidido/whatdidido/internal/ui"
)

var (
	connectProvider    string
	connectReconfigure bool
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect work-tracking integrations",
	Long: `Connect prompts for the credentials each integration needs, stores them
in the configuration file, and verifies them against the live service.

Already-configured integrations are skipped unless --reconfigure is set.
All keys for one integration are written as a single batch, so an
interrupted run never leaves an integration half-configured.

Examples:
  whatdidido connect                      # walk through every integration
  whatdidido connect --provider github    # connect GitHub only
  whatdidido connect --reconfigure        # re-enter existing credentials`,
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	connectCmd.Flags().StringVar(&connectProvider, "provider", "", "connect a single provider by name")
	connectCmd.Flags().BoolVar(&connectReconfigure, "reconfigure", false, "re-prompt for providers that are already configured")
}

func runConnect(cmd *cobra.Command, args []string) error {
	store := openStore()
	if err := store.Ensure(); err != nil {
		return err
	}

	targets := provider.All()
	if connectProvider != "" {
		p := provider.Get(connectProvider)
		if p == nil {
			return fmt.Errorf("unknown provider %q (available: %s)",
				connectProvider, strings.Join(provider.Names(), ", "))
		}
		targets = []provider.Provider{p}
	}

	settings, _ := config.LoadSettings()

	for _, p := range targets {
		schema := p.Schema()

		raw, err := store.ReadAll()
		if err != nil {
			return err
		}
		if schema.Configured(raw) && !connectReconfigure {
			ui.Printf("%s is already configured, skipping (use --reconfigure to change it)\n", schema.DisplayName)
			continue
		}

		ui.Printf("Setting up %s...\n", schema.DisplayName)
		entries, err := promptForKeys(schema)
		if err != nil {
			return err
		}
		if err := store.UpsertMany(entries); err != nil {
			return err
		}
		log.Debug("stored credentials", "provider", p.Name(), "keys", len(entries))

		raw, err = store.ReadAll()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), settings.Timeout())
		res := p.Authenticate(ctx, raw)
		cancel()
		reportAuth(schema.DisplayName, res)
	}
	return nil
}

// promptForKeys asks for every required key, hiding input for secrets.
// Optional keys keep their schema defaults and can be edited in the
// configuration file directly.
func promptForKeys(schema provider.Schema) ([]envfile.Entry, error) {
	entries := make([]envfile.Entry, 0, len(schema.Required))
	for _, key := range schema.Required {
		var (
			value string
			err   error
		)
		if isSensitiveKey(key) {
			value, err = prompt.Secret(key)
		} else {
			value, err = prompt.Text(key)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, envfile.Entry{Key: key, Value: value})
	}
	return entries, nil
}
