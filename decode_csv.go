package walletdex

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/walletdex/walletdex/date"
)

// defaultUptime is assumed when the Uptime column is absent or unparsable.
var defaultUptime = decimal.NewFromInt(95)

// DecodeCSV reads a wallet collection from CSV. Rows that cannot be mapped to
// a minimally valid wallet are skipped and their reason collected as a
// warning; the decode fails with a *DecodeError only when the input has no
// header or yields zero valid wallets.
func DecodeCSV(r io.Reader) (ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("cannot read CSV input: %w", err)
	}
	rows := scanCSV(string(raw))
	if len(rows) == 0 {
		return ImportResult{}, &DecodeError{Reason: "empty input, no header row"}
	}

	// Header row maps column name to index; data rows are looked up by name
	// so any subset of the optional columns is accepted.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}

	var result ImportResult
	for n, row := range rows[1:] {
		wallet, err := walletFromRow(index, row)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %v", n+2, err))
			continue
		}
		result.Wallets = append(result.Wallets, wallet)
	}
	if len(result.Wallets) == 0 {
		return result, &DecodeError{Reason: "no valid wallet rows"}
	}
	return result, nil
}

// scanCSV splits the input into records with a two-state scanner (normal and
// inQuotes), one rune at a time. A quoted field may contain commas and
// newlines, so rows cannot be derived by splitting on line breaks; inside a
// quoted field a doubled quote emits one literal quote. Fully empty physical
// rows are dropped.
func scanCSV(input string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)
	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	endRow := func() {
		endCell()
		if len(row) == 1 && row[0] == "" {
			row = nil
			return
		}
		rows = append(rows, row)
		row = nil
	}

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"' && !inQuotes:
			inQuotes = true
		case c == '"' && inQuotes:
			if i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
			} else {
				inQuotes = false
			}
		case c == ',' && !inQuotes:
			endCell()
		case c == '\n' && !inQuotes:
			endRow()
		case c == '\r' && !inQuotes:
			// swallowed; the following \n (if any) ends the row
		default:
			cell.WriteRune(c)
		}
	}
	if cell.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return rows
}

// walletFromRow maps one CSV record to a wallet, applying the documented
// defaults for absent optional columns.
func walletFromRow(index map[string]int, row []string) (Wallet, error) {
	get := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		v := row[i]
		if v == "N/A" {
			return ""
		}
		return v
	}
	getBool := func(column string) bool {
		return parseYes(get(column))
	}

	name := get("Name")
	if name == "" {
		return Wallet{}, fmt.Errorf("missing required column Name")
	}

	platforms, err := parsePlatforms(get("Platforms"))
	if err != nil {
		return Wallet{}, err
	}

	version := get("Version")
	if version == "" {
		return Wallet{}, fmt.Errorf("missing required column Version")
	}
	website := get("Website")
	if website == "" {
		return Wallet{}, fmt.Errorf("missing required column Website")
	}
	lastTested, err := date.Parse(get("Last Tested"))
	if err != nil {
		return Wallet{}, fmt.Errorf("invalid Last Tested: %w", err)
	}

	w := Wallet{
		ID:          DeriveID(name),
		Name:        name,
		Description: get("Description"),
		Category:    categoryOrDefault(get("Category")),
		Custody:     custodyOrDefault(get("Custody Model")),
		Platforms:   platforms,
		Version:     version,
		LastTested:  lastTested,
		Website:     website,
		Features: Features{
			DexSwap:               getBool("DEX Swap"),
			NFTGallery:            getBool("NFT Gallery"),
			Staking:               getBool("Staking"),
			FiatOnRamp:            getBool("Fiat On-Ramp"),
			FiatOffRamp:           getBool("Fiat Off-Ramp"),
			PushNotifications:     getBool("Push Notifications"),
			PayQR:                 paySupportOrDefault(get("Pay QR")),
			BiometricAuth:         getBool("Biometric Auth"),
			HardwareWalletSupport: getBool("Hardware Support"),
			MultiChain:            getBool("Multi-chain"),
			DappBrowser:           getBool("DApp Browser"),
		},
		Security: SecurityInfo{
			AuditStatus:  auditStatusOrDefault(get("Audit Status")),
			AuditCompany: get("Audit Company"),
			SourceCode:   sourceCodeOrDefault(get("Source Code")),
		},
		Performance: PerformanceInfo{
			Speed:       speedOrDefault(get("Transaction Speed")),
			FailureRate: failureRateOrDefault(get("Failure Rate")),
			Uptime:      uptimeOrDefault(get("Uptime")),
		},
		// The CSV format does not carry the UX block; imported wallets get
		// the neutral grading.
		Experience: ExperienceInfo{
			Onboarding: OnboardingMedium,
			PayUX:      PayUXBuried,
		},
		Pricing: PricingInfo{
			Free: getBool("Free"),
			Fees: feeLevelOrDefault(get("Transaction Fees")),
		},
		DownloadLinks: Links{
			Web:     get("Web Link"),
			Chrome:  get("Chrome Link"),
			Firefox: get("Firefox Link"),
			IOS:     get("iOS Link"),
			Android: get("Android Link"),
			Desktop: get("Desktop Link"),
		},
	}
	if auditDate := get("Audit Date"); auditDate != "" {
		if d, err := date.Parse(auditDate); err == nil {
			w.Security.AuditDate = &d
		}
	}
	return w, nil
}

// parseYes accepts yes, true, or 1 (case-insensitive) as true; anything else
// is false.
func parseYes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

// parsePlatforms splits a "; "-joined platform cell, skipping unknown tags.
// At least one recognized platform is required for a valid wallet.
func parsePlatforms(cell string) ([]Platform, error) {
	var platforms []Platform
	for _, part := range strings.Split(cell, ";") {
		p, err := ParsePlatform(part)
		if err != nil {
			continue
		}
		platforms = append(platforms, p)
	}
	if len(platforms) == 0 {
		return nil, fmt.Errorf("no recognized platform in %q", cell)
	}
	return platforms, nil
}

func categoryOrDefault(s string) Category {
	if c, err := ParseCategory(s); err == nil {
		return c
	}
	return CategoryNiche
}

func custodyOrDefault(s string) Custody {
	if c, err := ParseCustody(s); err == nil {
		return c
	}
	return SelfCustody
}

// paySupportOrDefault is lenient: legacy exports wrote yes/no for the
// tri-state level, so those map onto full/none. Unknown tags default to none.
func paySupportOrDefault(s string) PaySupport {
	if p, err := ParsePaySupport(s); err == nil {
		return p
	}
	switch strings.ToLower(s) {
	case "yes":
		return PayFull
	default:
		return PayNone
	}
}

func auditStatusOrDefault(s string) AuditStatus {
	if a, err := ParseAuditStatus(s); err == nil {
		return a
	}
	return Unaudited
}

func sourceCodeOrDefault(s string) SourceCode {
	switch c := SourceCode(strings.ToLower(s)); c {
	case SourceOpen, SourceClosed, SourcePartial:
		return c
	default:
		return SourceClosed
	}
}

func speedOrDefault(s string) Speed {
	switch v := Speed(strings.ToLower(s)); v {
	case SpeedFast, SpeedMedium, SpeedSlow:
		return v
	default:
		return SpeedMedium
	}
}

func failureRateOrDefault(s string) FailureRate {
	switch v := FailureRate(strings.ToLower(s)); v {
	case FailureLow, FailureMedium, FailureHigh:
		return v
	default:
		return FailureMedium
	}
}

func feeLevelOrDefault(s string) FeeLevel {
	switch v := FeeLevel(strings.ToLower(s)); v {
	case FeesLow, FeesMedium, FeesHigh:
		return v
	default:
		return FeesMedium
	}
}

func uptimeOrDefault(s string) decimal.Decimal {
	if s == "" {
		return defaultUptime
	}
	u, err := decimal.NewFromString(s)
	if err != nil {
		return defaultUptime
	}
	return u
}
