// Package walletdex implements the core of a wallet catalog browser: a fixed
// collection of wallet profiles that can be filtered, sorted, grouped into a
// bounded comparison set, and interchanged as CSV or JSON.
package walletdex

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/walletdex/walletdex/date"
)

// Platform identifies where a wallet can be installed or used.
type Platform string

const (
	PlatformWeb      Platform = "web"
	PlatformChrome   Platform = "chrome"
	PlatformFirefox  Platform = "firefox"
	PlatformSafari   Platform = "safari"
	PlatformEdge     Platform = "edge"
	PlatformIOS      Platform = "ios"
	PlatformAndroid  Platform = "android"
	PlatformDesktop  Platform = "desktop"
	PlatformHardware Platform = "hardware"
)

// AllPlatforms lists every known platform, in the order used by exports.
var AllPlatforms = []Platform{
	PlatformWeb, PlatformChrome, PlatformFirefox, PlatformSafari, PlatformEdge,
	PlatformIOS, PlatformAndroid, PlatformDesktop, PlatformHardware,
}

// ParsePlatform parses a string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPlatforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// Category groups wallets by their market position.
type Category string

const (
	CategoryMajor    Category = "major"
	CategoryHardware Category = "hardware"
	CategoryRegional Category = "regional"
	CategoryNiche    Category = "niche"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryMajor, CategoryHardware, CategoryRegional, CategoryNiche:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Custody describes how a wallet holds private keys.
type Custody string

const (
	SelfCustody Custody = "self-custody"
	MPC         Custody = "mpc"
	Custodial   Custody = "custodial"
)

// ParseCustody parses a string into a Custody model.
func ParseCustody(s string) (Custody, error) {
	switch c := Custody(strings.ToLower(strings.TrimSpace(s))); c {
	case SelfCustody, MPC, Custodial:
		return c, nil
	default:
		return "", fmt.Errorf("unknown custody model: %q", s)
	}
}

// PaySupport is the tri-state payment-QR capability of a wallet.
type PaySupport string

const (
	PayFull    PaySupport = "full"
	PayPartial PaySupport = "partial"
	PayNone    PaySupport = "none"
)

// ParsePaySupport parses a string into a PaySupport level.
func ParsePaySupport(s string) (PaySupport, error) {
	switch p := PaySupport(strings.ToLower(strings.TrimSpace(s))); p {
	case PayFull, PayPartial, PayNone:
		return p, nil
	default:
		return "", fmt.Errorf("unknown payment QR support level: %q", s)
	}
}

// AuditStatus describes the security audit state of a wallet.
type AuditStatus string

const (
	Audited   AuditStatus = "audited"
	Pending   AuditStatus = "pending"
	Unaudited AuditStatus = "unaudited"
)

// rank orders audit statuses for the security sort key.
func (a AuditStatus) rank() int {
	switch a {
	case Audited:
		return 2
	case Pending:
		return 1
	default:
		return 0
	}
}

// ParseAuditStatus parses a string into an AuditStatus.
func ParseAuditStatus(s string) (AuditStatus, error) {
	switch a := AuditStatus(strings.ToLower(strings.TrimSpace(s))); a {
	case Audited, Pending, Unaudited:
		return a, nil
	default:
		return "", fmt.Errorf("unknown audit status: %q", s)
	}
}

// SourceCode describes how open a wallet's source code is.
type SourceCode string

const (
	SourceOpen    SourceCode = "open"
	SourceClosed  SourceCode = "closed"
	SourcePartial SourceCode = "partial"
)

// Speed grades transaction speed.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedMedium Speed = "medium"
	SpeedSlow   Speed = "slow"
)

// FailureRate grades transaction failure rate.
type FailureRate string

const (
	FailureLow    FailureRate = "low"
	FailureMedium FailureRate = "medium"
	FailureHigh   FailureRate = "high"
)

// Onboarding grades how hard it is to get started with a wallet.
type Onboarding string

const (
	OnboardingEasy    Onboarding = "easy"
	OnboardingMedium  Onboarding = "medium"
	OnboardingComplex Onboarding = "complex"
)

// PayUX describes how the payment-QR flow is surfaced in the UI.
type PayUX string

const (
	PayUXOneTap PayUX = "one-tap"
	PayUXBuried PayUX = "buried"
	PayUXNone   PayUX = "none"
)

// FeeLevel grades transaction fees.
type FeeLevel string

const (
	FeesLow    FeeLevel = "low"
	FeesMedium FeeLevel = "medium"
	FeesHigh   FeeLevel = "high"
)

// Features is the closed set of capabilities tracked per wallet: ten boolean
// flags plus the tri-state payment-QR support level.
type Features struct {
	DexSwap               bool       `json:"dexSwap"`
	NFTGallery            bool       `json:"nftGallery"`
	Staking               bool       `json:"staking"`
	FiatOnRamp            bool       `json:"fiatOnRamp"`
	FiatOffRamp           bool       `json:"fiatOffRamp"`
	PushNotifications     bool       `json:"pushNotifications"`
	PayQR                 PaySupport `json:"payQR"`
	BiometricAuth         bool       `json:"biometricAuth"`
	HardwareWalletSupport bool       `json:"hardwareWalletSupport"`
	MultiChain            bool       `json:"multiChain"`
	DappBrowser           bool       `json:"dappBrowser"`
}

// SecurityInfo captures the audit posture of a wallet.
type SecurityInfo struct {
	AuditStatus  AuditStatus `json:"auditStatus"`
	AuditCompany string      `json:"auditCompany,omitempty"`
	AuditDate    *date.Date  `json:"auditDate,omitempty"`
	SourceCode   SourceCode  `json:"sourceCode"`
}

// Uptime is a JSON number on the wire, not a quoted string.
func init() { decimal.MarshalJSONWithoutQuotes = true }

// PerformanceInfo captures observed runtime behavior.
// Uptime is a percentage in [0,100], kept as a decimal so that values survive
// an export/import cycle without float formatting drift.
type PerformanceInfo struct {
	Speed       Speed           `json:"transactionSpeed"`
	FailureRate FailureRate     `json:"failureRate"`
	Uptime      decimal.Decimal `json:"uptime"`
}

// ExperienceInfo captures user-experience grading.
type ExperienceInfo struct {
	Onboarding      Onboarding `json:"onboarding"`
	PayUX           PayUX      `json:"payUX"`
	MobileOptimized bool       `json:"mobileOptimized"`
}

// PricingInfo captures what using the wallet costs.
type PricingInfo struct {
	Free            bool     `json:"free"`
	Fees            FeeLevel `json:"transactionFees"`
	AdditionalCosts string   `json:"additionalCosts,omitempty"`
}

// Links holds optional per-platform download URLs.
type Links struct {
	Web      string `json:"web,omitempty"`
	Chrome   string `json:"chrome,omitempty"`
	Firefox  string `json:"firefox,omitempty"`
	Safari   string `json:"safari,omitempty"`
	Edge     string `json:"edge,omitempty"`
	IOS      string `json:"ios,omitempty"`
	Android  string `json:"android,omitempty"`
	Desktop  string `json:"desktop,omitempty"`
	Hardware string `json:"hardware,omitempty"`
}

// Wallet is one catalog record. It is a passive value type: records are
// loaded or imported wholesale, never mutated field by field.
type Wallet struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PayNotes      string          `json:"payNotes"`
	Category      Category        `json:"category"`
	Custody       Custody         `json:"custodyModel"`
	Platforms     []Platform      `json:"platforms"`
	Features      Features        `json:"features"`
	Security      SecurityInfo    `json:"security"`
	Performance   PerformanceInfo `json:"performance"`
	Experience    ExperienceInfo  `json:"userExperience"`
	Pricing       PricingInfo     `json:"pricing"`
	LastTested    date.Date       `json:"lastTested"`
	Version       string          `json:"version"`
	Website       string          `json:"website"`
	Logo          string          `json:"logo,omitempty"`
	DownloadLinks Links           `json:"downloadLinks"`
}

// DeriveID computes the stable identifier for a wallet name: lowercase, with
// whitespace runs collapsed to a single hyphen.
func DeriveID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// HasPlatform reports whether the wallet is available on the given platform.
func (w Wallet) HasPlatform(p Platform) bool {
	for _, have := range w.Platforms {
		if have == p {
			return true
		}
	}
	return false
}

// Link returns the download URL for a platform, or "" if none is recorded.
func (w Wallet) Link(p Platform) string {
	switch p {
	case PlatformWeb:
		return w.DownloadLinks.Web
	case PlatformChrome:
		return w.DownloadLinks.Chrome
	case PlatformFirefox:
		return w.DownloadLinks.Firefox
	case PlatformSafari:
		return w.DownloadLinks.Safari
	case PlatformEdge:
		return w.DownloadLinks.Edge
	case PlatformIOS:
		return w.DownloadLinks.IOS
	case PlatformAndroid:
		return w.DownloadLinks.Android
	case PlatformDesktop:
		return w.DownloadLinks.Desktop
	case PlatformHardware:
		return w.DownloadLinks.Hardware
	default:
		return ""
	}
}

// Validate checks that the wallet carries every required field. It returns a
// *ValidationError listing all failures at once, so a caller can report them
// together.
func (w Wallet) Validate() error {
	var errs []string
	if w.Name == "" {
		errs = append(errs, "name is required")
	}
	if w.Category == "" {
		errs = append(errs, "category is required")
	}
	if w.Custody == "" {
		errs = append(errs, "custody model is required")
	}
	if len(w.Platforms) == 0 {
		errs = append(errs, "at least one platform is required")
	}
	if w.Version == "" {
		errs = append(errs, "version is required")
	}
	if w.LastTested.IsZero() {
		errs = append(errs, "last tested date is required")
	}
	if w.Website == "" {
		errs = append(errs, "website is required")
	}
	if len(errs) > 0 {
		return &ValidationError{ID: w.ID, Errs: errs}
	}
	return nil
}

// platformsString serializes the platform set for CSV cells.
func platformsString(ps []Platform) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, "; ")
}
