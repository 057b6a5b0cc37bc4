package network

import "github.com/AlexZinkM/midnightctl/internal/model"

// NormalizeForAddressing maps the CLI's standalone label to the on-chain
// undeployed label. Apply it only where a network is handed to address
// encoding or key derivation.
func NormalizeForAddressing(n model.NetworkID) model.NetworkID {
	if n == model.NetworkStandalone {
		return model.NetworkUndeployed
	}
	return n
}

// IsFundable reports whether genesis wallets can fund accounts on n.
func IsFundable(n model.NetworkID) bool {
	switch n {
	case model.NetworkStandalone, model.NetworkDevNet, model.NetworkUndeployed:
		return true
	}
	return false
}

// DisplayName returns a human readable network name.
func DisplayName(n model.NetworkID) string {
	switch n {
	case model.NetworkMainNet:
		return "Mainnet"
	case model.NetworkTestNet:
		return "Testnet"
	case model.NetworkDevNet:
		return "Devnet"
	case model.NetworkQaNet:
		return "QA Network"
	case model.NetworkUndeployed:
		return "Undeployed (Local)"
	case model.NetworkPreview:
		return "Preview"
	case model.NetworkPreProd:
		return "Pre-Production"
	case model.NetworkStandalone:
		return "Standalone (Local)"
	default:
		return string(n)
	}
}
