package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex"
	"github.com/walletdex/walletdex/renderer"
)

type listCmd struct {
	search     string
	platforms  string
	custodies  string
	categories string
	features   string
	sortBy     string
	descending bool
	view       string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list wallets matching the filters" }
func (*listCmd) Usage() string {
	return `list [-search <term>] [-platform <p,...>] [-custody <c,...>] [-category <c,...>] [-feature <f,...>] [-sort <key>] [-desc]

  Displays the catalog filtered and sorted by the given facets. Facets left
  unset do not constrain the view. Features are comma-separated keys, prefix
  a key with ! to require its absence, use payQR=full|partial|none for the
  QR level.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "substring of name, description, or payment notes")
	f.StringVar(&c.platforms, "platform", "", "comma-separated platforms, any-of")
	f.StringVar(&c.custodies, "custody", "", "comma-separated custody models")
	f.StringVar(&c.categories, "category", "", "comma-separated categories")
	f.StringVar(&c.features, "feature", "", "comma-separated feature constraints")
	f.StringVar(&c.sortBy, "sort", "", "sort key: name, lastTested, security, or uptime")
	f.BoolVar(&c.descending, "desc", false, "sort in descending order")
	f.StringVar(&c.view, "view", "", "display mode to record: grid or table")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	patch, err := c.patch()
	if err != nil {
		return fail(err)
	}
	store.SetFilters(patch)
	if c.view != "" {
		if err := store.SetViewMode(c.view); err != nil {
			return fail(err)
		}
	}

	printMarkdown(renderer.RenderList(renderer.NewListView(store)))
	return subcommands.ExitSuccess
}

// patch translates the command flags into a filter patch.
func (c *listCmd) patch() (walletdex.Patch, error) {
	var p walletdex.Patch
	if c.search != "" {
		p.Search = &c.search
	}
	if c.platforms != "" {
		var platforms []walletdex.Platform
		for _, tag := range splitList(c.platforms) {
			platform, err := walletdex.ParsePlatform(tag)
			if err != nil {
				return p, err
			}
			platforms = append(platforms, platform)
		}
		p.Platforms = &platforms
	}
	if c.custodies != "" {
		var custodies []walletdex.Custody
		for _, tag := range splitList(c.custodies) {
			custody, err := walletdex.ParseCustody(tag)
			if err != nil {
				return p, err
			}
			custodies = append(custodies, custody)
		}
		p.Custodies = &custodies
	}
	if c.categories != "" {
		var categories []walletdex.Category
		for _, tag := range splitList(c.categories) {
			category, err := walletdex.ParseCategory(tag)
			if err != nil {
				return p, err
			}
			categories = append(categories, category)
		}
		p.Categories = &categories
	}
	if c.features != "" {
		ff, err := parseFeatureList(c.features)
		if err != nil {
			return p, err
		}
		p.Features = ff
	}
	if c.sortBy != "" {
		key, err := walletdex.ParseSortKey(c.sortBy)
		if err != nil {
			return p, err
		}
		p.SortBy = &key
	}
	if c.descending {
		p.Descending = &c.descending
	}
	return p, nil
}

func splitList(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
