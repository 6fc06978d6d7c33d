package walletdex

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads a wallet collection from JSON: either the export envelope
// or a bare wallet array. Records failing validation are skipped with a
// collected warning, mirroring the CSV decode contract; a *DecodeError is
// returned when the document does not parse or yields zero valid wallets.
func DecodeJSON(r io.Reader) (ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("cannot read JSON input: %w", err)
	}

	var wallets []Wallet
	var envelope struct {
		Wallets []Wallet `json:"wallets"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Wallets != nil {
		wallets = envelope.Wallets
	} else if err := json.Unmarshal(raw, &wallets); err != nil {
		return ImportResult{}, &DecodeError{Reason: fmt.Sprintf("not a wallet document: %v", err)}
	}

	var result ImportResult
	for i, w := range wallets {
		if w.ID == "" {
			w.ID = DeriveID(w.Name)
		}
		if err := w.Validate(); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("wallet %d: %v", i, err))
			continue
		}
		result.Wallets = append(result.Wallets, w)
	}
	if len(result.Wallets) == 0 {
		return result, &DecodeError{Reason: "no valid wallet records"}
	}
	return result, nil
}
