package renderer

import (
	"github.com/walletdex/walletdex"
)

// ListView is the data behind the list template: the derived view plus a
// human summary of the filters that produced it.
type ListView struct {
	Wallets       []walletdex.Wallet
	Total         int    // size of the unfiltered collection
	FilterSummary string // e.g. "custody: self-custody, sort: uptime desc"
	ViewMode      string
}

// NewListView assembles a ListView from a store.
func NewListView(s *walletdex.Store) *ListView {
	return &ListView{
		Wallets:       s.View(),
		Total:         len(s.Wallets()),
		FilterSummary: summarizeSpec(s.Spec()),
		ViewMode:      s.ViewMode(),
	}
}

// WalletView is the data behind the single-profile template.
type WalletView struct {
	Wallet   walletdex.Wallet
	Selected bool // member of the comparison selection
}

// ComparisonView is the data behind the side-by-side template.
type ComparisonView struct {
	Wallets []walletdex.Wallet
	Max     int
}

// AnalyticsView is the data behind the analytics template.
type AnalyticsView struct {
	Total int
	Pay   walletdex.PayStats
	Gaps  []walletdex.FeatureGap
}

// NewAnalyticsView computes the aggregates over a collection.
func NewAnalyticsView(wallets []walletdex.Wallet) *AnalyticsView {
	return &AnalyticsView{
		Total: len(wallets),
		Pay:   walletdex.ComputePayStats(wallets),
		Gaps:  walletdex.FeatureGaps(wallets),
	}
}
