// Package cmd implements the CLI application to browse the wallet catalog.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/walletdex/walletdex"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "browse")
	c.Register(&showCmd{}, "browse")
	c.Register(&compareCmd{}, "browse")
	c.Register(&analyticsCmd{}, "browse")

	c.Register(&presetCmd{}, "filters")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&importCmd{}, "interchange")
	c.Register(&validateCmd{}, "interchange")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var catalogFile = flag.String("catalog-file", "wallets.json", "Path to the wallet catalog file (JSON)")
var stateFile = flag.String("state-file", ".walletdex.db", "Path to the persisted state database")

// openStore loads the catalog and the persisted state into a ready store.
// The caller owns the returned state and must Close it.
func openStore() (*walletdex.Store, *walletdex.State, error) {
	state, err := walletdex.OpenState(*stateFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open state %q: %w", *stateFile, err)
	}

	store := walletdex.NewStore()
	if err := store.AttachState(state); err != nil {
		state.Close()
		return nil, nil, fmt.Errorf("cannot restore state %q: %w", *stateFile, err)
	}

	catalog := walletdex.FileCatalog{Path: *catalogFile}
	wallets, err := catalog.Wallets()
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, catalog does not exist, starting with an empty collection")
		wallets, err = nil, nil
	}
	if err != nil {
		state.Close()
		return nil, nil, err
	}
	if err := store.SetWallets(wallets); err != nil {
		// Duplicate ids are recoverable: the store keeps the deduplicated
		// collection.
		log.Printf("warning, %v", err)
	}
	return store, state, nil
}

// saveCatalog writes the store collection back to the catalog file.
func saveCatalog(store *walletdex.Store) error {
	catalog := walletdex.FileCatalog{Path: *catalogFile}
	return catalog.Save(store.Wallets())
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
