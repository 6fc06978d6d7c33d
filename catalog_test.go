package walletdex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")
	c := FileCatalog{Path: path}

	in := testCollection()
	if err := c.Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := c.Wallets()
	if err != nil {
		t.Fatalf("Wallets error: %v", err)
	}
	if !sameIDs(ids(got), ids(in)) {
		t.Errorf("ids = %v want %v", ids(got), ids(in))
	}
}

func TestFileCatalogMissingFile(t *testing.T) {
	c := FileCatalog{Path: filepath.Join(t.TempDir(), "absent.json")}
	if _, err := c.Wallets(); err == nil {
		t.Error("Wallets on a missing catalog did not fail")
	}
}

func TestDirSinkWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	s := DirSink{Dir: dir}
	if err := s.Save([]byte("Name,Category\n"), "wallets.csv", "text/csv"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "wallets.csv"))
	if err != nil {
		t.Fatalf("exported file unreadable: %v", err)
	}
	if string(data) != "Name,Category\n" {
		t.Errorf("content = %q", data)
	}
}
