package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex"
	"github.com/walletdex/walletdex/date"
	"github.com/walletdex/walletdex/renderer"
)

type presetCmd struct {
	save        string
	name        string
	description string
	load        string
	remove      string
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "save, load, delete, or list filter presets" }
func (*presetCmd) Usage() string {
	return `preset [-save <id> -name <label> [-description <text>]] | [-load <id>] | [-delete <id>]

  Without flags, lists the saved presets. -save captures the current live
  filters under the given id, overwriting an existing preset in place.
  -load replaces the live filters with the preset and displays the resulting
  view. -delete removes a preset.
`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.save, "save", "", "save the current filters as a preset with this id")
	f.StringVar(&c.name, "name", "", "display name of the saved preset")
	f.StringVar(&c.description, "description", "", "optional description of the saved preset")
	f.StringVar(&c.load, "load", "", "load the preset with this id")
	f.StringVar(&c.remove, "delete", "", "delete the preset with this id")
}

func (c *presetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, state, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer state.Close()

	switch {
	case c.save != "":
		name := c.name
		if name == "" {
			name = c.save
		}
		p := walletdex.Preset{
			ID:          c.save,
			Name:        name,
			Description: c.description,
			Spec:        store.Spec(),
			CreatedAt:   date.Today(),
		}
		if err := store.SavePreset(p); err != nil {
			return fail(err)
		}
		fmt.Printf("Saved preset %q\n", c.save)

	case c.load != "":
		if err := store.LoadPreset(c.load); err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderList(renderer.NewListView(store)))

	case c.remove != "":
		if err := store.DeletePreset(c.remove); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted preset %q\n", c.remove)

	default:
		presets := store.Presets()
		if len(presets) == 0 {
			fmt.Println("No saved presets.")
			return subcommands.ExitSuccess
		}
		for _, p := range presets {
			fmt.Printf("%s\t%s\t(created %s)\n", p.ID, p.Name, p.CreatedAt)
		}
	}
	return subcommands.ExitSuccess
}
