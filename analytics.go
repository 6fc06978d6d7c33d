package walletdex

// PayStats aggregates the tri-state payment-QR support over a collection.
type PayStats struct {
	TotalSupported int `json:"totalSupported"` // full + partial
	FullSupport    int `json:"fullSupport"`
	PartialSupport int `json:"partialSupport"`
	NoSupport      int `json:"noSupport"`
}

// ComputePayStats counts payment-QR support levels over the wallets.
func ComputePayStats(wallets []Wallet) PayStats {
	var stats PayStats
	for _, w := range wallets {
		switch w.Features.PayQR {
		case PayFull:
			stats.FullSupport++
		case PayPartial:
			stats.PartialSupport++
		default:
			stats.NoSupport++
		}
	}
	stats.TotalSupported = stats.FullSupport + stats.PartialSupport
	return stats
}

// FeatureGap describes how widely one feature is supported and which wallets
// lack it.
type FeatureGap struct {
	Feature        FeatureKey `json:"feature"`
	SupportPercent float64    `json:"supportPercentage"`
	Missing        []string   `json:"missingWallets"`
}

// FeatureGaps computes per-feature support over the wallets: the percentage
// of wallets carrying each feature and the ids of those missing it. The
// tri-state QR feature counts as supported at any level above none.
func FeatureGaps(wallets []Wallet) []FeatureGap {
	if len(wallets) == 0 {
		return nil
	}
	gaps := make([]FeatureGap, 0, len(BooleanFeatureKeys)+1)
	for _, key := range BooleanFeatureKeys {
		gap := FeatureGap{Feature: key}
		supported := 0
		for _, w := range wallets {
			if hasBoolFeature(w.Features, key) {
				supported++
			} else {
				gap.Missing = append(gap.Missing, w.ID)
			}
		}
		gap.SupportPercent = 100 * float64(supported) / float64(len(wallets))
		gaps = append(gaps, gap)
	}

	qr := FeatureGap{Feature: KeyPayQR}
	supported := 0
	for _, w := range wallets {
		if w.Features.PayQR != PayNone && w.Features.PayQR != "" {
			supported++
		} else {
			qr.Missing = append(qr.Missing, w.ID)
		}
	}
	qr.SupportPercent = 100 * float64(supported) / float64(len(wallets))
	return append(gaps, qr)
}

func hasBoolFeature(f Features, key FeatureKey) bool {
	switch key {
	case KeyDexSwap:
		return f.DexSwap
	case KeyNFTGallery:
		return f.NFTGallery
	case KeyStaking:
		return f.Staking
	case KeyFiatOnRamp:
		return f.FiatOnRamp
	case KeyFiatOffRamp:
		return f.FiatOffRamp
	case KeyPushNotifications:
		return f.PushNotifications
	case KeyBiometricAuth:
		return f.BiometricAuth
	case KeyHardwareWalletSupport:
		return f.HardwareWalletSupport
	case KeyMultiChain:
		return f.MultiChain
	case KeyDappBrowser:
		return f.DappBrowser
	default:
		return false
	}
}
