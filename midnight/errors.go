package midnight

import (
	"errors"

	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/client"
	"github.com/AlexZinkM/midnightctl/internal/common"
	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
	"github.com/AlexZinkM/midnightctl/internal/wallet"
)

// ErrInvalidRequest is returned for malformed operation input.
var ErrInvalidRequest = errors.New("invalid request")

const (
	CodeInvalidRequest             = "INVALID_REQUEST"
	CodeInvalidAmount              = "INVALID_AMOUNT"
	CodeInvalidAddressFormat       = "INVALID_ADDRESS_FORMAT"
	CodeInvalidChecksum            = "INVALID_CHECKSUM"
	CodeDuplicateWalletName        = "DUPLICATE_WALLET_NAME"
	CodeWalletNotFound             = "WALLET_NOT_FOUND"
	CodeAmbiguousDefault           = "AMBIGUOUS_DEFAULT"
	CodeInvalidWalletName          = "INVALID_WALLET_NAME"
	CodeInvalidSeedLength          = "INVALID_SEED_LENGTH"
	CodeInvalidSeedEncoding        = "INVALID_SEED_ENCODING"
	CodeInvalidMnemonicChecksum    = "INVALID_MNEMONIC_CHECKSUM"
	CodeInvalidMnemonicWordCount   = "INVALID_MNEMONIC_WORD_COUNT"
	CodeInvalidPassword            = "INVALID_PASSWORD"
	CodeSeedSealed                 = "SEED_SEALED"
	CodeServiceUnavailable         = "SERVICE_UNAVAILABLE"
	CodeSyncTimeout                = "SYNC_TIMEOUT"
	CodeInsufficientBalance        = "INSUFFICIENT_BALANCE"
	CodeUnsupportedDestinationType = "UNSUPPORTED_DESTINATION_TYPE"
	CodeNetworkMismatch            = "NETWORK_MISMATCH"
	CodePreparationError           = "PREPARATION_ERROR"
	CodeProofGenerationError       = "PROOF_GENERATION_ERROR"
	CodeSubmissionError            = "SUBMISSION_ERROR"
	CodeNetworkNotFundable         = "NETWORK_NOT_FUNDABLE"
	CodeToolkitUnavailable         = "TOOLKIT_UNAVAILABLE"
	CodeInternalError              = "INTERNAL_ERROR"
)

// errorCodes is checked in order. Address errors come before the transfer
// reasons that wrap them, and the transfer reasons before the client errors
// they carry as causes.
var errorCodes = []struct {
	err  error
	code string
}{
	{address.ErrInvalidAddressFormat, CodeInvalidAddressFormat},
	{address.ErrInvalidChecksum, CodeInvalidChecksum},
	{transfer.ErrInvalidRecipient, CodeInvalidAddressFormat},
	{wallet.ErrDuplicateWalletName, CodeDuplicateWalletName},
	{wallet.ErrWalletNotFound, CodeWalletNotFound},
	{wallet.ErrAmbiguousDefault, CodeAmbiguousDefault},
	{wallet.ErrInvalidWalletName, CodeInvalidWalletName},
	{crypto.ErrInvalidSeedLength, CodeInvalidSeedLength},
	{crypto.ErrInvalidSeedEncoding, CodeInvalidSeedEncoding},
	{crypto.ErrInvalidMnemonicChecksum, CodeInvalidMnemonicChecksum},
	{crypto.ErrInvalidMnemonicWordCount, CodeInvalidMnemonicWordCount},
	{crypto.ErrInvalidPassword, CodeInvalidPassword},
	{crypto.ErrSeedSealed, CodeSeedSealed},
	{config.ErrServiceUnavailable, CodeServiceUnavailable},
	{transfer.ErrSyncTimeout, CodeSyncTimeout},
	{transfer.ErrInsufficientBalance, CodeInsufficientBalance},
	{transfer.ErrUnsupportedDestinationType, CodeUnsupportedDestinationType},
	{transfer.ErrNetworkMismatch, CodeNetworkMismatch},
	{transfer.ErrPreparation, CodePreparationError},
	{transfer.ErrProofGeneration, CodeProofGenerationError},
	{transfer.ErrSubmission, CodeSubmissionError},
	{ErrNetworkNotFundable, CodeNetworkNotFundable},
	{ErrInvalidGenesisIndex, CodeInvalidRequest},
	{client.ErrToolkitUnavailable, CodeToolkitUnavailable},
	{common.ErrEmptyAmount, CodeInvalidAmount},
	{common.ErrInvalidAmount, CodeInvalidAmount},
	{common.ErrZeroAmount, CodeInvalidAmount},
	{ErrInvalidRequest, CodeInvalidRequest},
}

// ErrorCode returns the stable code of err, CodeInternalError when err is
// not one of the known failures.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternalError
}

// ErrorResponse builds the error body returned by the CLI and the HTTP API.
func ErrorResponse(err error) model.ErrorResponse {
	return model.ErrorResponse{Error: err.Error(), Code: ErrorCode(err)}
}
