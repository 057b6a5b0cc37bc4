package model

// BalanceResponse represents response for GET /wallets/balance
type BalanceResponse struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Network    string   `json:"network"`
	Synced     bool     `json:"synced"`
	Unshielded string   `json:"unshielded"`
	Shielded   string   `json:"shielded"`
	Total      string   `json:"total"`
	DustCoins  uint64   `json:"dustCoins"`
	Mnemonic   []string `json:"mnemonic,omitempty"` // only when the wallet was created by this request
}
