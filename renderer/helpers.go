package renderer

import (
	"fmt"
	"strings"

	"github.com/walletdex/walletdex"
)

// summarizeSpec builds the one-line filter summary shown above the list.
// Unconstrained facets are omitted; an empty spec summarizes to the sort
// order alone.
func summarizeSpec(spec walletdex.Spec) string {
	var parts []string
	if spec.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", spec.Search))
	}
	if len(spec.Platforms) > 0 {
		parts = append(parts, "platforms: "+joinTags(spec.Platforms))
	}
	if len(spec.Custodies) > 0 {
		parts = append(parts, "custody: "+joinTags(spec.Custodies))
	}
	if len(spec.Categories) > 0 {
		parts = append(parts, "categories: "+joinTags(spec.Categories))
	}
	if features := summarizeFeatures(spec.Features); features != "" {
		parts = append(parts, "features: "+features)
	}
	sort := "sort: " + string(spec.SortBy)
	if spec.Descending {
		sort += " desc"
	}
	parts = append(parts, sort)
	return strings.Join(parts, ", ")
}

func joinTags[T ~string](tags []T) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, "|")
}

func summarizeFeatures(ff walletdex.FeatureFilter) string {
	var parts []string
	add := func(key walletdex.FeatureKey, want *bool) {
		if want == nil {
			return
		}
		if *want {
			parts = append(parts, string(key))
		} else {
			parts = append(parts, "!"+string(key))
		}
	}
	add(walletdex.KeyDexSwap, ff.DexSwap)
	add(walletdex.KeyNFTGallery, ff.NFTGallery)
	add(walletdex.KeyStaking, ff.Staking)
	add(walletdex.KeyFiatOnRamp, ff.FiatOnRamp)
	add(walletdex.KeyFiatOffRamp, ff.FiatOffRamp)
	add(walletdex.KeyPushNotifications, ff.PushNotifications)
	add(walletdex.KeyBiometricAuth, ff.BiometricAuth)
	add(walletdex.KeyHardwareWalletSupport, ff.HardwareWalletSupport)
	add(walletdex.KeyMultiChain, ff.MultiChain)
	add(walletdex.KeyDappBrowser, ff.DappBrowser)
	if ff.PayQR != nil {
		parts = append(parts, "payQR="+string(*ff.PayQR))
	}
	return strings.Join(parts, " ")
}
