package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
	"github.com/AlexZinkM/midnightctl/midnight"
)

// WalletHandler serves wallet operations over HTTP
type WalletHandler struct {
	svc    WalletService
	logger *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(svc WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, logger: logger}
}

// ListWallets handles GET /wallets
// @Summary      List wallets
// @Description  Lists the wallets stored in the project
// @Tags         wallets
// @Produce      json
// @Success      200  {object}  model.ListWalletsResponse
// @Router       /wallets [get]
func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.svc.ListWallets())
}

// GetBalance handles GET /wallets/balance
// @Summary      Get wallet balance
// @Description  Syncs the wallet and returns its NIGHT balances. A sync timeout returns the last known balance with synced=false
// @Tags         wallets
// @Produce      json
// @Param        name  query     string  false  "Wallet name, the default wallet when empty"
// @Success      200   {object}  model.BalanceResponse
// @Failure      404   {object}  model.ErrorResponse
// @Failure      503   {object}  model.ErrorResponse
// @Router       /wallets/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	balance, err := h.svc.GetBalance(r.Context(), r.URL.Query().Get("name"), midnight.BalanceOptions{})
	if err != nil && !(errors.Is(err, transfer.ErrSyncTimeout) && balance != nil) {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// GetAddress handles GET /wallets/address
// @Summary      Get wallet addresses
// @Description  Returns the addresses of a wallet with a base64 PNG QR code of the unshielded address
// @Tags         wallets
// @Produce      json
// @Param        name  query     string  false  "Wallet name, the default wallet when empty"
// @Success      200   {object}  model.AddressResponse
// @Failure      404   {object}  model.ErrorResponse
// @Router       /wallets/address [get]
func (h *WalletHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	addresses, err := h.svc.Addresses(r.Context(), r.URL.Query().Get("name"), true)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, addresses)
}

// Send handles POST /wallets/send
// @Summary      Send NIGHT
// @Description  Sends a shielded NIGHT transfer from a stored wallet
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Transfer data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallets/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: %w", midnight.ErrInvalidRequest, err))
		return
	}
	if req.ToAddress == "" || req.Amount == "" {
		h.writeError(w, fmt.Errorf("%w: toAddress and amount are required", midnight.ErrInvalidRequest))
		return
	}

	payResp, err := h.svc.Send(r.Context(), req, midnight.SendOptions{
		OnPhase: func(p transfer.Phase) {
			h.logger.Debug("transfer phase", zap.Stringer("phase", p))
		},
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payResp)
}

// ValidateAddress handles POST /address/validate
// @Summary      Validate address
// @Description  Checks a Midnight address and reports its type and network
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request  body      model.ValidateAddressRequest  true  "Address"
// @Success      200      {object}  model.ValidateAddressResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /address/validate [post]
func (h *WalletHandler) ValidateAddress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ValidateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: %w", midnight.ErrInvalidRequest, err))
		return
	}

	writeJSON(w, http.StatusOK, midnight.ValidateAddress(req.Address))
}

// Network handles GET /network
// @Summary      Get network
// @Description  Returns the detected network and the configured service endpoints
// @Tags         network
// @Produce      json
// @Success      200  {object}  model.NetworkResponse
// @Router       /network [get]
func (h *WalletHandler) Network(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.svc.NetworkInfo())
}

func (h *WalletHandler) writeError(w http.ResponseWriter, err error) {
	resp := midnight.ErrorResponse(err)
	status := StatusFor(resp.Code)
	if status >= http.StatusInternalServerError {
		h.logger.Warn("request failed", zap.String("code", resp.Code), zap.Error(err))
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code string) int {
	switch code {
	case midnight.CodeInvalidRequest,
		midnight.CodeInvalidAmount,
		midnight.CodeInvalidAddressFormat,
		midnight.CodeInvalidChecksum,
		midnight.CodeInvalidWalletName,
		midnight.CodeInvalidSeedLength,
		midnight.CodeInvalidSeedEncoding,
		midnight.CodeInvalidMnemonicChecksum,
		midnight.CodeInvalidMnemonicWordCount,
		midnight.CodeUnsupportedDestinationType,
		midnight.CodeNetworkMismatch,
		midnight.CodeNetworkNotFundable:
		return http.StatusBadRequest
	case midnight.CodeInvalidPassword, midnight.CodeSeedSealed:
		return http.StatusForbidden
	case midnight.CodeWalletNotFound:
		return http.StatusNotFound
	case midnight.CodeDuplicateWalletName, midnight.CodeAmbiguousDefault:
		return http.StatusConflict
	case midnight.CodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	case midnight.CodePreparationError, midnight.CodeProofGenerationError, midnight.CodeSubmissionError:
		return http.StatusBadGateway
	case midnight.CodeServiceUnavailable, midnight.CodeToolkitUnavailable:
		return http.StatusServiceUnavailable
	case midnight.CodeSyncTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
