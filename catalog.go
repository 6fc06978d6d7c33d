package walletdex

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileCatalog is the file-backed Source used by the CLI: a single JSON file
// holding the full wallet collection, either as the export envelope or a
// bare array.
type FileCatalog struct {
	Path string
}

// Wallets loads the collection from the catalog file. Records failing
// validation are dropped with a logged warning, matching the import
// contract.
func (c FileCatalog) Wallets() ([]Wallet, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %q: %w", c.Path, err)
	}
	defer f.Close()

	result, err := DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load catalog %q: %w", c.Path, err)
	}
	for _, warning := range result.Warnings {
		log.Printf("catalog-warning file=%q %s", c.Path, warning)
	}
	return result.Wallets, nil
}

// Save writes the full collection back to the catalog file, all blocks
// included so nothing is lost.
func (c FileCatalog) Save(wallets []Wallet) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("cannot create catalog %q: %w", c.Path, err)
	}
	defer f.Close()
	if err := Export(f, wallets, FormatJSON, AllOptions()); err != nil {
		return fmt.Errorf("cannot write catalog %q: %w", c.Path, err)
	}
	log.Printf("save-catalog file=%q count=%d", c.Path, len(wallets))
	return nil
}

// DirSink is a Sink writing exported documents into a directory.
type DirSink struct {
	Dir string
}

// Save writes the document under the sink directory.
func (s DirSink) Save(data []byte, filename, contentType string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create export directory %q: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write export %q: %w", path, err)
	}
	log.Printf("save-export file=%q type=%q size=%d", path, contentType, len(data))
	return nil
}
