package walletdex

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the ordering of a filtered view.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByLastTested SortKey = "lastTested"
	SortBySecurity   SortKey = "security"
	SortByUptime     SortKey = "uptime"
)

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortByName, SortByLastTested, SortBySecurity, SortByUptime:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", s)
	}
}

// FeatureKey names one entry of the Features struct, for feature constraints
// and analytics.
type FeatureKey string

const (
	KeyDexSwap               FeatureKey = "dexSwap"
	KeyNFTGallery            FeatureKey = "nftGallery"
	KeyStaking               FeatureKey = "staking"
	KeyFiatOnRamp            FeatureKey = "fiatOnRamp"
	KeyFiatOffRamp           FeatureKey = "fiatOffRamp"
	KeyPushNotifications     FeatureKey = "pushNotifications"
	KeyPayQR                 FeatureKey = "payQR"
	KeyBiometricAuth         FeatureKey = "biometricAuth"
	KeyHardwareWalletSupport FeatureKey = "hardwareWalletSupport"
	KeyMultiChain            FeatureKey = "multiChain"
	KeyDappBrowser           FeatureKey = "dappBrowser"
)

// BooleanFeatureKeys lists the ten boolean feature keys, in declaration order.
var BooleanFeatureKeys = []FeatureKey{
	KeyDexSwap, KeyNFTGallery, KeyStaking, KeyFiatOnRamp, KeyFiatOffRamp,
	KeyPushNotifications, KeyBiometricAuth, KeyHardwareWalletSupport,
	KeyMultiChain, KeyDappBrowser,
}

// FeatureFilter holds partial feature constraints: a nil field is
// unconstrained, a set field must match exactly. All set fields must match
// for a wallet to pass.
type FeatureFilter struct {
	DexSwap               *bool       `json:"dexSwap,omitempty"`
	NFTGallery            *bool       `json:"nftGallery,omitempty"`
	Staking               *bool       `json:"staking,omitempty"`
	FiatOnRamp            *bool       `json:"fiatOnRamp,omitempty"`
	FiatOffRamp           *bool       `json:"fiatOffRamp,omitempty"`
	PushNotifications     *bool       `json:"pushNotifications,omitempty"`
	PayQR                 *PaySupport `json:"payQR,omitempty"`
	BiometricAuth         *bool       `json:"biometricAuth,omitempty"`
	HardwareWalletSupport *bool       `json:"hardwareWalletSupport,omitempty"`
	MultiChain            *bool       `json:"multiChain,omitempty"`
	DappBrowser           *bool       `json:"dappBrowser,omitempty"`
}

// boolConstraints pairs every boolean constraint with its wallet accessor.
func (ff FeatureFilter) boolConstraints() []struct {
	want *bool
	get  func(Features) bool
} {
	return []struct {
		want *bool
		get  func(Features) bool
	}{
		{ff.DexSwap, func(f Features) bool { return f.DexSwap }},
		{ff.NFTGallery, func(f Features) bool { return f.NFTGallery }},
		{ff.Staking, func(f Features) bool { return f.Staking }},
		{ff.FiatOnRamp, func(f Features) bool { return f.FiatOnRamp }},
		{ff.FiatOffRamp, func(f Features) bool { return f.FiatOffRamp }},
		{ff.PushNotifications, func(f Features) bool { return f.PushNotifications }},
		{ff.BiometricAuth, func(f Features) bool { return f.BiometricAuth }},
		{ff.HardwareWalletSupport, func(f Features) bool { return f.HardwareWalletSupport }},
		{ff.MultiChain, func(f Features) bool { return f.MultiChain }},
		{ff.DappBrowser, func(f Features) bool { return f.DappBrowser }},
	}
}

// Matches reports whether the wallet features satisfy every set constraint.
func (ff FeatureFilter) Matches(f Features) bool {
	for _, c := range ff.boolConstraints() {
		if c.want != nil && c.get(f) != *c.want {
			return false
		}
	}
	// The tri-state QR level is compared by strict equality: requesting
	// "partial" does not match "full".
	if ff.PayQR != nil && f.PayQR != *ff.PayQR {
		return false
	}
	return true
}

// merge overlays set fields of patch onto ff, then removes the keys listed in
// unset. It returns the merged filter.
func (ff FeatureFilter) merge(patch *FeatureFilter, unset []FeatureKey) FeatureFilter {
	if patch != nil {
		if patch.DexSwap != nil {
			ff.DexSwap = patch.DexSwap
		}
		if patch.NFTGallery != nil {
			ff.NFTGallery = patch.NFTGallery
		}
		if patch.Staking != nil {
			ff.Staking = patch.Staking
		}
		if patch.FiatOnRamp != nil {
			ff.FiatOnRamp = patch.FiatOnRamp
		}
		if patch.FiatOffRamp != nil {
			ff.FiatOffRamp = patch.FiatOffRamp
		}
		if patch.PushNotifications != nil {
			ff.PushNotifications = patch.PushNotifications
		}
		if patch.PayQR != nil {
			ff.PayQR = patch.PayQR
		}
		if patch.BiometricAuth != nil {
			ff.BiometricAuth = patch.BiometricAuth
		}
		if patch.HardwareWalletSupport != nil {
			ff.HardwareWalletSupport = patch.HardwareWalletSupport
		}
		if patch.MultiChain != nil {
			ff.MultiChain = patch.MultiChain
		}
		if patch.DappBrowser != nil {
			ff.DappBrowser = patch.DappBrowser
		}
	}
	for _, key := range unset {
		switch key {
		case KeyDexSwap:
			ff.DexSwap = nil
		case KeyNFTGallery:
			ff.NFTGallery = nil
		case KeyStaking:
			ff.Staking = nil
		case KeyFiatOnRamp:
			ff.FiatOnRamp = nil
		case KeyFiatOffRamp:
			ff.FiatOffRamp = nil
		case KeyPushNotifications:
			ff.PushNotifications = nil
		case KeyPayQR:
			ff.PayQR = nil
		case KeyBiometricAuth:
			ff.BiometricAuth = nil
		case KeyHardwareWalletSupport:
			ff.HardwareWalletSupport = nil
		case KeyMultiChain:
			ff.MultiChain = nil
		case KeyDappBrowser:
			ff.DappBrowser = nil
		}
	}
	return ff
}

// Spec is a complete filter specification. The zero value of each facet means
// "unconstrained"; DefaultSpec returns the canonical default (sort by name,
// ascending).
type Spec struct {
	Platforms  []Platform    `json:"platforms,omitempty"`
	Custodies  []Custody     `json:"custodyModels,omitempty"`
	Categories []Category    `json:"categories,omitempty"`
	Features   FeatureFilter `json:"features"`
	Search     string        `json:"search,omitempty"`
	SortBy     SortKey       `json:"sortBy"`
	Descending bool          `json:"descending,omitempty"`
}

// DefaultSpec returns the unconstrained specification.
func DefaultSpec() Spec {
	return Spec{SortBy: SortByName}
}

// Filter derives an ordered view of wallets from a specification. It is pure:
// the input slice is never mutated, and the result is always a fresh slice.
//
// Every stage is conjunctive and a no-op when its constraint is empty. The
// final sort is stable; ties keep the input's relative order, there is no
// secondary sort key.
func Filter(wallets []Wallet, spec Spec) []Wallet {
	filtered := make([]Wallet, 0, len(wallets))
	search := strings.ToLower(spec.Search)
	for _, w := range wallets {
		if search != "" && !matchesSearch(w, search) {
			continue
		}
		if len(spec.Platforms) > 0 && !intersectsPlatforms(w, spec.Platforms) {
			continue
		}
		if len(spec.Custodies) > 0 && !containsCustody(spec.Custodies, w.Custody) {
			continue
		}
		if len(spec.Categories) > 0 && !containsCategory(spec.Categories, w.Category) {
			continue
		}
		if !spec.Features.Matches(w.Features) {
			continue
		}
		filtered = append(filtered, w)
	}

	less := comparator(spec.SortBy)
	sort.SliceStable(filtered, func(i, j int) bool {
		if spec.Descending {
			return less(filtered[j], filtered[i])
		}
		return less(filtered[i], filtered[j])
	})
	return filtered
}

// matchesSearch reports whether the lowercased search term is a substring of
// the wallet name, description, or payment notes.
func matchesSearch(w Wallet, search string) bool {
	return strings.Contains(strings.ToLower(w.Name), search) ||
		strings.Contains(strings.ToLower(w.Description), search) ||
		strings.Contains(strings.ToLower(w.PayNotes), search)
}

func intersectsPlatforms(w Wallet, requested []Platform) bool {
	for _, p := range requested {
		if w.HasPlatform(p) {
			return true
		}
	}
	return false
}

func containsCustody(set []Custody, c Custody) bool {
	for _, have := range set {
		if have == c {
			return true
		}
	}
	return false
}

func containsCategory(set []Category, c Category) bool {
	for _, have := range set {
		if have == c {
			return true
		}
	}
	return false
}

// comparator returns the strict-less ordering for a sort key.
func comparator(key SortKey) func(a, b Wallet) bool {
	switch key {
	case SortByLastTested:
		return func(a, b Wallet) bool { return a.LastTested.Before(b.LastTested) }
	case SortBySecurity:
		return func(a, b Wallet) bool {
			return a.Security.AuditStatus.rank() < b.Security.AuditStatus.rank()
		}
	case SortByUptime:
		return func(a, b Wallet) bool {
			return a.Performance.Uptime.LessThan(b.Performance.Uptime)
		}
	default: // SortByName
		return func(a, b Wallet) bool { return strings.Compare(a.Name, b.Name) < 0 }
	}
}
