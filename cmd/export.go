package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex"
)

type exportCmd struct {
	format      string
	output      string
	features    bool
	security    bool
	performance bool
	links       bool
	filtered    bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the catalog as CSV or JSON" }
func (*exportCmd) Usage() string {
	return `export -format csv|json [-o <dir>] [-filtered] [-features=false] [-security=false] [-performance=false] [-links=false]

  Writes the catalog in the requested interchange format. By default every
  optional block is included and the document goes to stdout; -o saves it
  into a directory instead. -filtered exports the current view rather than
  the whole collection.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "export format: csv or json")
	f.StringVar(&c.output, "o", "", "directory to save the export into, stdout when empty")
	f.BoolVar(&c.features, "features", true, "include the feature columns")
	f.BoolVar(&c.security, "security", true, "include the security columns")
	f.BoolVar(&c.performance, "performance", true, "include the performance columns")
	f.BoolVar(&c.links, "links", true, "include the download link columns")
	f.BoolVar(&c.filtered, "filtered", false, "export the filtered view instead of the whole catalog")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	wallets := store.Wallets()
	if c.filtered {
		wallets = store.View()
	}
	options := walletdex.Options{
		Features:    c.features,
		Security:    c.security,
		Performance: c.performance,
		Links:       c.links,
	}
	format := walletdex.Format(c.format)

	var buf bytes.Buffer
	if err := walletdex.Export(&buf, wallets, format, options); err != nil {
		return fail(err)
	}

	if c.output == "" {
		fmt.Print(buf.String())
		return subcommands.ExitSuccess
	}
	sink := walletdex.DirSink{Dir: c.output}
	filename := "wallets-" + time.Now().Format("2006-01-02") + "." + c.format
	if err := sink.Save(buf.Bytes(), filename, walletdex.ContentType(format)); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %d wallets to %s\n", len(wallets), filepath.Join(c.output, filename))
	return subcommands.ExitSuccess
}
