package cmd

import (
	"fmt"
	"strings"

	"github.com/walletdex/walletdex"
)

// parseFeatureList parses the -feature flag syntax: comma-separated feature
// keys, each optionally negated with a ! prefix, plus payQR=<level> for the
// tri-state key.
func parseFeatureList(s string) (*walletdex.FeatureFilter, error) {
	var ff walletdex.FeatureFilter
	for _, item := range splitList(s) {
		if level, ok := strings.CutPrefix(item, "payQR="); ok {
			p, err := walletdex.ParsePaySupport(level)
			if err != nil {
				return nil, err
			}
			ff.PayQR = &p
			continue
		}
		want := true
		key := item
		if negated, ok := strings.CutPrefix(item, "!"); ok {
			want = false
			key = negated
		}
		if err := setBoolConstraint(&ff, walletdex.FeatureKey(key), want); err != nil {
			return nil, err
		}
	}
	return &ff, nil
}

func setBoolConstraint(ff *walletdex.FeatureFilter, key walletdex.FeatureKey, want bool) error {
	v := want
	switch key {
	case walletdex.KeyDexSwap:
		ff.DexSwap = &v
	case walletdex.KeyNFTGallery:
		ff.NFTGallery = &v
	case walletdex.KeyStaking:
		ff.Staking = &v
	case walletdex.KeyFiatOnRamp:
		ff.FiatOnRamp = &v
	case walletdex.KeyFiatOffRamp:
		ff.FiatOffRamp = &v
	case walletdex.KeyPushNotifications:
		ff.PushNotifications = &v
	case walletdex.KeyBiometricAuth:
		ff.BiometricAuth = &v
	case walletdex.KeyHardwareWalletSupport:
		ff.HardwareWalletSupport = &v
	case walletdex.KeyMultiChain:
		ff.MultiChain = &v
	case walletdex.KeyDappBrowser:
		ff.DappBrowser = &v
	default:
		return fmt.Errorf("unknown feature key: %q", key)
	}
	return nil
}
