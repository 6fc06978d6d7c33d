package walletdex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// EncodeJSON writes the wallets as a single JSON document: an envelope with
// the export timestamp, the record count, the options used, and the projected
// records. The projection applies the same Options gating as the CSV export
// but loses no information beyond field selection. The 2-space indentation is
// cosmetic, not contract.
func EncodeJSON(w io.Writer, wallets []Wallet, o Options, exportedAt time.Time) error {
	projected := make([]json.Marshaler, 0, len(wallets))
	for _, wallet := range wallets {
		projected = append(projected, projectWallet(wallet, o))
	}

	envelope := &jsonObjectWriter{}
	envelope.
		Append("exportedAt", exportedAt.UTC().Format(time.RFC3339)).
		Append("walletCount", len(wallets)).
		Append("options", o).
		Append("wallets", projected)

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("cannot marshal export envelope: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("cannot indent export envelope: %w", err)
	}
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write export envelope: %w", err)
	}
	return nil
}

// projectWallet builds the ordered field selection for one wallet. The base
// identity fields always appear; the performance option also carries the
// user-experience and pricing blocks, matching the CSV performance block.
func projectWallet(w Wallet, o Options) *jsonObjectWriter {
	jw := &jsonObjectWriter{}
	jw.
		Append("id", w.ID).
		Append("name", w.Name).
		Append("description", w.Description).
		Append("category", w.Category).
		Append("custodyModel", w.Custody).
		Append("platforms", w.Platforms).
		Append("version", w.Version).
		Append("lastTested", w.LastTested).
		Append("website", w.Website).
		Optional("logo", w.Logo).
		Append("payNotes", w.PayNotes)
	if o.Features {
		jw.Append("features", w.Features)
	}
	if o.Security {
		jw.Append("security", w.Security)
	}
	if o.Performance {
		jw.Append("performance", w.Performance)
		jw.Append("userExperience", w.Experience)
		jw.Append("pricing", w.Pricing)
	}
	if o.Links {
		jw.Append("downloadLinks", w.DownloadLinks)
	}
	return jw
}
