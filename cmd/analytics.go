package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex/renderer"
)

type analyticsCmd struct {
	filtered bool
}

func (*analyticsCmd) Name() string     { return "analytics" }
func (*analyticsCmd) Synopsis() string { return "display payment support and feature gap aggregates" }
func (*analyticsCmd) Usage() string {
	return `analytics [-filtered]

  Displays payment QR support counts and per-feature support percentages over
  the catalog, or over the filtered view with -filtered.
`
}

func (c *analyticsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.filtered, "filtered", false, "aggregate over the filtered view instead of the whole catalog")
}

func (c *analyticsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	wallets := store.Wallets()
	if c.filtered {
		wallets = store.View()
	}
	printMarkdown(renderer.RenderAnalytics(renderer.NewAnalyticsView(wallets)))
	return subcommands.ExitSuccess
}
