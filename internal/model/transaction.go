package model

import (
	"time"

	"github.com/google/uuid"
)

// TransferTTL is how long a prepared transfer stays valid.
const TransferTTL = 30 * time.Minute

// TransferIntent is a single transfer request, built fresh for every send
// and never persisted.
type TransferIntent struct {
	ID        uuid.UUID
	Amount    uint64
	Token     string
	Recipient ParsedAddress
	TTL       time.Time
}

// UnprovenTransaction is a prepared transaction awaiting its proof.
type UnprovenTransaction struct {
	Intent TransferIntent
	Data   []byte
}

// ProvenTransaction is a transaction ready for submission.
type ProvenTransaction struct {
	Intent TransferIntent
	Data   []byte
}
