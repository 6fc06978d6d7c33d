package walletdex

import (
	"strings"
	"testing"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"MetaStar", "metastar"},
		{"Wallet Pro", "wallet-pro"},
		{"  Ledger   Vault  ", "ledger-vault"},
		{"UPPER lower", "upper-lower"},
	}
	for _, tt := range tests {
		if got := DeriveID(tt.name); got != tt.want {
			t.Errorf("DeriveID(%q) = %q want %q", tt.name, got, tt.want)
		}
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	w := Wallet{ID: "broken"}
	err := w.Validate()
	if err == nil {
		t.Fatal("Validate accepted an empty wallet")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Validate error is %T want *ValidationError", err)
	}
	// name, category, custody, platforms, version, lastTested, website
	if len(verr.Errs) != 7 {
		t.Errorf("got %d failures want 7: %v", len(verr.Errs), verr.Errs)
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("error does not mention the missing name: %v", err)
	}
}

func TestValidateAcceptsCompleteWallet(t *testing.T) {
	if err := testWallet("MetaStar").Validate(); err != nil {
		t.Errorf("Validate rejected a complete wallet: %v", err)
	}
}

func TestHasPlatform(t *testing.T) {
	w := testWallet("MetaStar")
	if !w.HasPlatform(PlatformIOS) {
		t.Error("HasPlatform(ios) = false for an iOS wallet")
	}
	if w.HasPlatform(PlatformHardware) {
		t.Error("HasPlatform(hardware) = true for a mobile-only wallet")
	}
}

func TestLink(t *testing.T) {
	w := testWallet("MetaStar", func(w *Wallet) {
		w.DownloadLinks.IOS = "https://apps.example.com/metastar"
	})
	if got := w.Link(PlatformIOS); got != "https://apps.example.com/metastar" {
		t.Errorf("Link(ios) = %q", got)
	}
	if got := w.Link(PlatformDesktop); got != "" {
		t.Errorf("Link(desktop) = %q want empty", got)
	}
}

func TestParsePlatform(t *testing.T) {
	if p, err := ParsePlatform(" Android "); err != nil || p != PlatformAndroid {
		t.Errorf("ParsePlatform(Android) = %q, %v", p, err)
	}
	if _, err := ParsePlatform("gameboy"); err == nil {
		t.Error("ParsePlatform accepted an unknown platform")
	}
}
