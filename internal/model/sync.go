package model

// NativeToken is the token key of NIGHT in balance maps.
const NativeToken = "NIGHT"

// SyncProgress is a snapshot of a wallet's synchronization state.
type SyncProgress struct {
	SyncedIndex  int64             `json:"syncedIndex"`
	RemainingLag int64             `json:"remainingLag"`
	// Balances holds the spendable balance per token. Transfers are shielded,
	// so NIGHT counts shielded coins only.
	Balances map[string]uint64 `json:"balances"`

	Shielded   uint64 `json:"shielded"`
	Unshielded uint64 `json:"unshielded"`
	DustCoins  uint64 `json:"dustCoins"`
}

// Balance returns the balance of token, zero when unknown.
func (p SyncProgress) Balance(token string) uint64 {
	return p.Balances[token]
}

// Total returns the shielded plus unshielded NIGHT balance.
func (p SyncProgress) Total() uint64 {
	return p.Shielded + p.Unshielded
}
