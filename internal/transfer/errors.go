package transfer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecipient           = errors.New("invalid recipient address")
	ErrSyncTimeout                = errors.New("wallet sync timed out")
	ErrInsufficientBalance        = errors.New("insufficient balance")
	ErrUnsupportedDestinationType = errors.New("unsupported destination address type")
	ErrNetworkMismatch            = errors.New("destination address belongs to another network")
	ErrPreparation                = errors.New("failed to prepare transaction")
	ErrProofGeneration            = errors.New("failed to generate proof")
	ErrSubmission                 = errors.New("failed to submit transaction")
)

// Error is a failed transfer. Phase is where the flow stopped, Reason one of
// the sentinels above and Err the underlying cause, if any.
type Error struct {
	Phase  Phase
	Reason error
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transfer failed while %s: %v", e.Phase, e.Reason)
	}
	return fmt.Sprintf("transfer failed while %s: %v: %v", e.Phase, e.Reason, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// FailedPhase returns the phase a transfer error was raised in.
func FailedPhase(err error) (Phase, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Phase, true
	}
	return PhaseIdle, false
}
