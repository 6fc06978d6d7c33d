package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check every catalog record for missing fields" }
func (*validateCmd) Usage() string {
	return `validate

  Validates every wallet in the catalog and reports all failures, grouped by
  wallet. Exits with a failure status when any record is invalid.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	wallets := store.Wallets()
	invalid := 0
	for _, w := range wallets {
		if err := w.Validate(); err != nil {
			invalid++
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	if invalid > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d wallets are invalid\n", invalid, len(wallets))
		return subcommands.ExitFailure
	}
	fmt.Printf("All %d wallets are valid.\n", len(wallets))
	return subcommands.ExitSuccess
}
