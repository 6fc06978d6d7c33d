package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one wallet profile" }
func (*showCmd) Usage() string {
	return `show <id>

  Displays the full profile of one wallet. The id is the lowercase hyphenated
  wallet name, as printed by list.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one wallet id is required")
		return subcommands.ExitUsageError
	}

	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	wallet, err := store.Wallet(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	view := &renderer.WalletView{
		Wallet:   wallet,
		Selected: store.Selection().Contains(wallet.ID),
	}
	printMarkdown(renderer.RenderWallet(view))
	return subcommands.ExitSuccess
}
