package model

// CreateWalletResponse represents the result of wallet create and import
type CreateWalletResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Name      string          `json:"name"`
	Network   NetworkID       `json:"network"`
	Addresses WalletAddresses `json:"addresses"`
	IsDefault bool            `json:"isDefault"`
	Mnemonic  []string        `json:"mnemonic,omitempty"`
}
