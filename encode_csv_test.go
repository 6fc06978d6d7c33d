package walletdex

import (
	"strings"
	"testing"
)

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{`Wallet, "Pro"`, `"Wallet, ""Pro"""`},
		{"has,comma", `"has,comma"`},
		{"line\nbreak", "\"line\nbreak\""},
		{"spaced out", "spaced out"},
	}
	for _, tt := range tests {
		if got := escapeCSV(tt.in); got != tt.want {
			t.Errorf("escapeCSV(%q) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestCSVHeaderFollowsOptions(t *testing.T) {
	base := CSVHeader(Options{})
	if got := len(base); got != len(csvBaseColumns) {
		t.Errorf("base header has %d columns want %d", got, len(csvBaseColumns))
	}
	all := CSVHeader(AllOptions())
	want := len(csvBaseColumns) + len(csvFeatureColumns) + len(csvSecurityColumns) +
		len(csvPerformanceColumns) + len(csvLinkColumns)
	if got := len(all); got != want {
		t.Errorf("full header has %d columns want %d", got, want)
	}
}

func TestEncodeCSVQuotesOnlyWhenNeeded(t *testing.T) {
	w := testWallet(`Wallet, "Pro"`, func(w *Wallet) {
		w.ID = "wallet-pro"
	})
	var sb strings.Builder
	if err := EncodeCSV(&sb, []Wallet{w}, Options{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines want 2:\n%s", len(lines), sb.String())
	}
	if !strings.HasPrefix(lines[1], `"Wallet, ""Pro""",major,`) {
		t.Errorf("row = %q, name cell not quoted and doubled", lines[1])
	}
	// The plain cells must stay unquoted.
	if strings.Contains(lines[1], `"major"`) {
		t.Errorf("row = %q, unquoted cell was quoted", lines[1])
	}
}

func TestEncodeCSVCells(t *testing.T) {
	w := testWallet("MetaStar", func(w *Wallet) {
		w.Security.AuditCompany = "" // serialized as N/A
	})
	var sb strings.Builder
	if err := EncodeCSV(&sb, []Wallet{w}, AllOptions()); err != nil {
		t.Fatal(err)
	}
	row := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")[1]
	cells := strings.Split(row, ",")

	header := CSVHeader(AllOptions())
	if len(cells) != len(header) {
		t.Fatalf("row has %d cells want %d", len(cells), len(header))
	}
	at := func(column string) string {
		for i, name := range header {
			if name == column {
				return cells[i]
			}
		}
		t.Fatalf("no column %q", column)
		return ""
	}

	if got := at("Platforms"); got != "ios; android" {
		t.Errorf("Platforms = %q want %q", got, "ios; android")
	}
	if got := at("Last Tested"); got != "2025-06-01" {
		t.Errorf("Last Tested = %q", got)
	}
	if got := at("DEX Swap"); got != "Yes" {
		t.Errorf("DEX Swap = %q want Yes", got)
	}
	if got := at("NFT Gallery"); got != "No" {
		t.Errorf("NFT Gallery = %q want No", got)
	}
	if got := at("Pay QR"); got != "full" {
		t.Errorf("Pay QR = %q want full", got)
	}
	if got := at("Audit Company"); got != "N/A" {
		t.Errorf("Audit Company = %q want N/A", got)
	}
	if got := at("Audit Date"); got != "N/A" {
		t.Errorf("Audit Date = %q want N/A", got)
	}
	if got := at("Uptime"); got != "99.9" {
		t.Errorf("Uptime = %q want 99.9", got)
	}
	if got := at("Web Link"); got != "N/A" {
		t.Errorf("Web Link = %q want N/A", got)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	var sb strings.Builder
	err := Export(&sb, nil, Format("pdf"), AllOptions())
	uf, ok := err.(*UnsupportedFormatError)
	if !ok {
		t.Fatalf("Export(pdf) error = %v want *UnsupportedFormatError", err)
	}
	if uf.Format != "pdf" {
		t.Errorf("Format = %q want pdf", uf.Format)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatCSV); got != "text/csv" {
		t.Errorf("ContentType(csv) = %q", got)
	}
	if got := ContentType(FormatJSON); got != "application/json" {
		t.Errorf("ContentType(json) = %q", got)
	}
}
