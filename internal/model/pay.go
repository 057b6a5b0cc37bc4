package model

// SendRequest represents request for POST /wallets/send
type SendRequest struct {
	From      string `json:"from,omitempty"`
	ToAddress string `json:"toAddress" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

// SendResponse represents the result of send and fund
type SendResponse struct {
	Success   bool   `json:"success"`
	TxID      string `json:"txId"`
	IntentID  string `json:"intentId"`
	From      string `json:"from"`
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"`
	Network   string `json:"network"`
}
