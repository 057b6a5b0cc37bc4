package model

import "time"

// WalletStoreVersion is the current version of the wallets file.
const WalletStoreVersion = 1

// SealedSeed is an encrypted seed envelope
type SealedSeed struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletAddresses holds the addresses derived from a wallet seed
type WalletAddresses struct {
	Unshielded string `json:"unshielded"`
	Shielded   string `json:"shielded,omitempty"`
	Dust       string `json:"dust,omitempty"`
}

// StoredWallet is a named wallet as persisted in the wallets file.
// Exactly one of Seed and Sealed is set.
type StoredWallet struct {
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	Network   NetworkID       `json:"network"`
	Seed      string          `json:"seed,omitempty"`
	Sealed    *SealedSeed     `json:"sealedSeed,omitempty"`
	Addresses WalletAddresses `json:"addresses"`
}

// WalletStoreFile is the on-disk wallets document
type WalletStoreFile struct {
	Version       int                      `json:"version"`
	DefaultWallet string                   `json:"defaultWallet,omitempty"`
	Wallets       map[string]*StoredWallet `json:"wallets"`
}

// WalletSummary represents a wallet in list responses
type WalletSummary struct {
	Name       string    `json:"name"`
	Network    NetworkID `json:"network"`
	Unshielded string    `json:"unshielded"`
	Shielded   string    `json:"shielded,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListWalletsResponse represents response for GET /wallets
type ListWalletsResponse struct {
	Default string          `json:"default,omitempty"`
	Wallets []WalletSummary `json:"wallets"`
}

// AddressResponse represents response for GET /wallets/address
type AddressResponse struct {
	Name      string          `json:"name"`
	Network   NetworkID       `json:"network"`
	Addresses WalletAddresses `json:"addresses"`
	QR        string          `json:"QR,omitempty"`
}
