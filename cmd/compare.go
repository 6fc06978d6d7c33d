package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex"
	"github.com/walletdex/walletdex/renderer"
)

type compareCmd struct {
	clear bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "toggle wallets in the comparison set and display it" }
func (*compareCmd) Usage() string {
	return `compare [-clear] [<id>...]

  Toggles each given wallet in the comparison set, then displays the set side
  by side. The set holds at most 5 wallets and persists across runs.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "empty the comparison set first")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	if c.clear {
		if err := store.ClearComparison(); err != nil {
			return fail(err)
		}
	}
	for _, id := range f.Args() {
		if _, err := store.Wallet(id); err != nil {
			return fail(err)
		}
		before := store.Selection()
		if err := store.ToggleComparison(id); err != nil {
			return fail(err)
		}
		if !before.Contains(id) && !store.Selection().Contains(id) {
			fmt.Fprintf(os.Stderr, "comparison set is full (%d), %q not added\n", before.Max, id)
		}
	}

	selection := store.Selection()
	wallets := make([]walletdex.Wallet, 0, len(selection.IDs))
	for _, id := range selection.IDs {
		w, err := store.Wallet(id)
		if err != nil {
			// A persisted id may no longer exist in the catalog; skip it.
			fmt.Fprintf(os.Stderr, "warning, %v\n", err)
			continue
		}
		wallets = append(wallets, w)
	}
	view := &renderer.ComparisonView{Wallets: wallets, Max: selection.Max}
	printMarkdown(renderer.RenderComparison(view))
	return subcommands.ExitSuccess
}
