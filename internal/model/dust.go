package model

// RegisterDustResponse is the result of a DUST registration
type RegisterDustResponse struct {
	Success bool   `json:"success"`
	Wallet  string `json:"wallet"`
	Address string `json:"address"`
	Network string `json:"network"`
	Synced  bool   `json:"synced"`
	TxID    string `json:"txId"`
}
