package walletdex

import (
	"github.com/shopspring/decimal"
	"github.com/walletdex/walletdex/date"
)

// testWallet builds a valid wallet with sensible defaults, so tests only
// spell out the fields they care about.
func testWallet(name string, mutate ...func(*Wallet)) Wallet {
	w := Wallet{
		ID:          DeriveID(name),
		Name:        name,
		Description: "A test wallet.",
		PayNotes:    "Scans payment QR codes.",
		Category:    CategoryMajor,
		Custody:     SelfCustody,
		Platforms:   []Platform{PlatformIOS, PlatformAndroid},
		Features: Features{
			DexSwap: true,
			Staking: true,
			PayQR:   PayFull,
		},
		Security: SecurityInfo{
			AuditStatus: Audited,
			SourceCode:  SourceOpen,
		},
		Performance: PerformanceInfo{
			Speed:       SpeedFast,
			FailureRate: FailureLow,
			Uptime:      decimal.NewFromFloat(99.9),
		},
		Experience: ExperienceInfo{
			Onboarding: OnboardingMedium,
			PayUX:      PayUXBuried,
		},
		Pricing: PricingInfo{
			Free: true,
			Fees: FeesLow,
		},
		LastTested: date.MustParse("2025-06-01"),
		Version:    "1.0.0",
		Website:    "https://example.com",
	}
	for _, m := range mutate {
		m(&w)
	}
	return w
}

func ids(wallets []Wallet) []string {
	out := make([]string, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, w.ID)
	}
	return out
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
