package walletdex

import (
	"fmt"
	"io"
	"strings"
)

// Column names of the CSV interchange format. The base block is always
// present; the optional blocks are gated by Options.
var (
	csvBaseColumns = []string{
		"Name", "Category", "Custody Model", "Platforms", "Version",
		"Last Tested", "Website",
	}
	csvFeatureColumns = []string{
		"DEX Swap", "NFT Gallery", "Staking", "Fiat On-Ramp", "Fiat Off-Ramp",
		"Push Notifications", "Pay QR", "Biometric Auth", "Hardware Support",
		"Multi-chain", "DApp Browser",
	}
	csvSecurityColumns = []string{
		"Audit Status", "Audit Company", "Audit Date", "Source Code",
	}
	csvPerformanceColumns = []string{
		"Transaction Speed", "Failure Rate", "Uptime", "Free", "Transaction Fees",
	}
	csvLinkColumns = []string{
		"Web Link", "Chrome Link", "Firefox Link", "iOS Link", "Android Link",
		"Desktop Link",
	}
)

// CSVHeader assembles the header row for the given options.
func CSVHeader(o Options) []string {
	header := append([]string{}, csvBaseColumns...)
	if o.Features {
		header = append(header, csvFeatureColumns...)
	}
	if o.Security {
		header = append(header, csvSecurityColumns...)
	}
	if o.Performance {
		header = append(header, csvPerformanceColumns...)
	}
	if o.Links {
		header = append(header, csvLinkColumns...)
	}
	return header
}

// EncodeCSV writes the wallets as CSV: a header row, then one row per wallet,
// comma-delimited, with conservative quoting (see escapeCSV).
func EncodeCSV(w io.Writer, wallets []Wallet, o Options) error {
	if _, err := fmt.Fprintln(w, strings.Join(CSVHeader(o), ",")); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, wallet := range wallets {
		row := csvRow(wallet, o)
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("cannot write CSV row for %q: %w", wallet.ID, err)
		}
	}
	return nil
}

// csvRow formats one wallet into cells matching CSVHeader(o).
func csvRow(w Wallet, o Options) []string {
	row := []string{
		escapeCSV(w.Name),
		escapeCSV(string(w.Category)),
		escapeCSV(string(w.Custody)),
		escapeCSV(platformsString(w.Platforms)),
		escapeCSV(w.Version),
		escapeCSV(w.LastTested.String()),
		escapeCSV(w.Website),
	}
	if o.Features {
		f := w.Features
		row = append(row,
			yesNo(f.DexSwap),
			yesNo(f.NFTGallery),
			yesNo(f.Staking),
			yesNo(f.FiatOnRamp),
			yesNo(f.FiatOffRamp),
			yesNo(f.PushNotifications),
			escapeCSV(string(f.PayQR)),
			yesNo(f.BiometricAuth),
			yesNo(f.HardwareWalletSupport),
			yesNo(f.MultiChain),
			yesNo(f.DappBrowser),
		)
	}
	if o.Security {
		sec := w.Security
		auditDate := "N/A"
		if sec.AuditDate != nil {
			auditDate = sec.AuditDate.String()
		}
		row = append(row,
			escapeCSV(string(sec.AuditStatus)),
			escapeCSV(orNA(sec.AuditCompany)),
			escapeCSV(auditDate),
			escapeCSV(string(sec.SourceCode)),
		)
	}
	if o.Performance {
		row = append(row,
			escapeCSV(string(w.Performance.Speed)),
			escapeCSV(string(w.Performance.FailureRate)),
			escapeCSV(w.Performance.Uptime.String()),
			yesNo(w.Pricing.Free),
			escapeCSV(string(w.Pricing.Fees)),
		)
	}
	if o.Links {
		row = append(row,
			escapeCSV(orNA(w.DownloadLinks.Web)),
			escapeCSV(orNA(w.DownloadLinks.Chrome)),
			escapeCSV(orNA(w.DownloadLinks.Firefox)),
			escapeCSV(orNA(w.DownloadLinks.IOS)),
			escapeCSV(orNA(w.DownloadLinks.Android)),
			escapeCSV(orNA(w.DownloadLinks.Desktop)),
		)
	}
	return row
}

// escapeCSV quotes a cell only when it must: a raw value containing a comma,
// a double quote, or a newline is wrapped in double quotes with embedded
// quotes doubled. Anything else is emitted as is.
func escapeCSV(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
