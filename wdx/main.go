package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/walletdex/walletdex/cmd"
)

// completion describes the command tree for shell completion. Running the
// binary under COMP_LINE answers the completion request and exits.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"catalog-file": predict.Files("*.json"),
		"state-file":   predict.Files("*.db"),
	},
	Sub: map[string]*complete.Command{
		"list": {Flags: map[string]complete.Predictor{
			"search":   predict.Something,
			"platform": predict.Set{"web", "chrome", "firefox", "safari", "edge", "ios", "android", "desktop", "hardware"},
			"custody":  predict.Set{"self-custody", "mpc", "custodial"},
			"category": predict.Set{"major", "hardware", "regional", "niche"},
			"feature":  predict.Something,
			"sort":     predict.Set{"name", "lastTested", "security", "uptime"},
			"desc":     predict.Nothing,
			"view":     predict.Set{"grid", "table"},
		}},
		"show":    {},
		"compare": {Flags: map[string]complete.Predictor{"clear": predict.Nothing}},
		"export": {Flags: map[string]complete.Predictor{
			"format": predict.Set{"csv", "json"},
			"o":      predict.Dirs("*"),
		}},
		"import": {Flags: map[string]complete.Predictor{
			"format": predict.Set{"csv", "json"},
			"merge":  predict.Nothing,
		}},
		"preset":    {},
		"analytics": {},
		"validate":  {},
		"topic":     {},
	},
}

func main() {
	completion.Complete("wdx")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
