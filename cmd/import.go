package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex"
)

type importCmd struct {
	format string
	merge  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import wallets from a CSV or JSON file" }
func (*importCmd) Usage() string {
	return `import [-format csv|json] [-merge] <file>

  Reads wallet records from the file and writes them into the catalog. The
  format is inferred from the file extension unless -format is given. Rows
  that cannot be mapped to a valid wallet are skipped with a warning; the
  import fails only when no record is valid. -merge keeps existing wallets
  and overrides colliding ids instead of replacing the whole catalog.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "input format: csv or json, inferred from the extension when empty")
	f.BoolVar(&c.merge, "merge", false, "merge into the existing catalog instead of replacing it")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one input file is required")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	format := c.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	in, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	var result walletdex.ImportResult
	switch strings.ToLower(format) {
	case "csv":
		result, err = walletdex.DecodeCSV(in)
	case "json":
		result, err = walletdex.DecodeJSON(in)
	default:
		err = fmt.Errorf("unknown import format: %q", format)
	}
	if err != nil {
		return fail(err)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning, %s\n", warning)
	}

	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	wallets := result.Wallets
	if c.merge {
		wallets = mergeWallets(store.Wallets(), result.Wallets)
	}
	if err := store.SetWallets(wallets); err != nil {
		fmt.Fprintf(os.Stderr, "warning, %v\n", err)
	}
	if err := saveCatalog(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d wallets (%d skipped)\n", len(result.Wallets), len(result.Warnings))
	return subcommands.ExitSuccess
}

// mergeWallets overlays imported wallets onto the existing collection:
// colliding ids are replaced by the import, new ids are appended in import
// order.
func mergeWallets(existing, imported []walletdex.Wallet) []walletdex.Wallet {
	index := make(map[string]int, len(existing))
	merged := append([]walletdex.Wallet{}, existing...)
	for i, w := range merged {
		index[w.ID] = i
	}
	for _, w := range imported {
		if i, ok := index[w.ID]; ok {
			merged[i] = w
			continue
		}
		index[w.ID] = len(merged)
		merged = append(merged, w)
	}
	return merged
}
