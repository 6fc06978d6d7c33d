package walletdex

import (
	"io"
	"strings"
	"time"
)

// Options selects which optional column blocks an export carries, on top of
// the always-present base fields.
type Options struct {
	Features    bool `json:"includeFeatures"`
	Security    bool `json:"includeSecurity"`
	Performance bool `json:"includePerformance"`
	Links       bool `json:"includeLinks"`
}

// AllOptions returns Options with every block enabled.
func AllOptions() Options {
	return Options{Features: true, Security: true, Performance: true, Links: true}
}

// Format tags an export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Export writes the wallets to w in the requested format. An unrecognized
// format tag yields an *UnsupportedFormatError; "pdf" falls in that bucket,
// there is no PDF writer.
func Export(w io.Writer, wallets []Wallet, format Format, o Options) error {
	switch Format(strings.ToLower(string(format))) {
	case FormatCSV:
		return EncodeCSV(w, wallets, o)
	case FormatJSON:
		return EncodeJSON(w, wallets, o, time.Now())
	default:
		return &UnsupportedFormatError{Format: string(format)}
	}
}

// ContentType returns the MIME type for a format tag, for the file-save sink.
func ContentType(format Format) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// ImportResult is the outcome of a decode: the wallets that parsed, plus one
// warning per skipped row. A decode fails outright only when nothing parsed.
type ImportResult struct {
	Wallets  []Wallet
	Warnings []string
}
