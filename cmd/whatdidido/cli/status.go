package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/whatdidido/whatdidido/internal/config"
	"github.com/whatdidido/whatdidido/internal/log"
	"github.com/whatdidido/whatdidido/internal/provider"
	"github.com/whatdidido/whatdidido/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check which integrations are configured and authenticated",
	Long: `Status runs the two-stage check for every known integration: a local
completeness check of its stored keys, then a live authentication round
trip for the ones that are fully configured. Checks run concurrently and
one failing integration never prevents the others from being reported.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusRow struct {
	name    string
	missing []string
	result  provider.AuthResult
}

func runStatus(cmd *cobra.Command, args []string) error {
	raw, err := openStore().ReadAll()
	if err != nil {
		return err
	}
	settings, _ := config.LoadSettings()

	all := provider.All()
	rows := make([]statusRow, len(all))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, p := range all {
		g.Go(func() error {
			schema := p.Schema()
			if missing := schema.Missing(raw); len(missing) > 0 {
				rows[i] = statusRow{name: schema.DisplayName, missing: missing}
				return nil
			}
			log.Debug("authenticating", "provider", p.Name())
			authCtx, cancel := context.WithTimeout(ctx, settings.Timeout())
			defer cancel()
			rows[i] = statusRow{name: schema.DisplayName, result: p.Authenticate(authCtx, raw)}
			return nil
		})
	}
	// Auth failures travel as values inside the rows; the goroutines
	// themselves never fail.
	_ = g.Wait()

	for _, row := range rows {
		switch {
		case len(row.missing) > 0:
			ui.Warnf("%s: not configured (missing %s)", row.name, strings.Join(row.missing, ", "))
		case row.result.OK:
			ui.Successf("%s: %s", row.name, row.result.Summary)
		default:
			ui.Errorf("%s: %s", row.name, row.result.Reason)
		}
	}
	return nil
}
