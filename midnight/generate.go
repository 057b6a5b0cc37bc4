package midnight

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/wallet"
)

const qrSize = 256

// CreateRequest describes a new wallet.
type CreateRequest struct {
	Name       string
	WordCount  int
	SetDefault bool
}

// ImportRequest describes a wallet restored from a seed or a mnemonic.
// Exactly one of Seed and Mnemonic is set.
type ImportRequest struct {
	Name       string
	Seed       string
	Mnemonic   string
	Passphrase string
	SetDefault bool
}

// CreateWallet generates a wallet. The mnemonic is returned once and never stored.
func (s *Service) CreateWallet(ctx context.Context, req CreateRequest) (*model.CreateWalletResponse, error) {
	w, words, err := s.wallets.Create(ctx, req.Name, wallet.CreateOptions{
		WordCount:  req.WordCount,
		SetDefault: req.SetDefault,
	})
	if err != nil {
		return nil, err
	}
	resp := s.walletResponse(w, "Wallet created successfully")
	resp.Mnemonic = words
	return resp, nil
}

// ImportWallet restores a wallet from a hex seed or a mnemonic.
func (s *Service) ImportWallet(ctx context.Context, req ImportRequest) (*model.CreateWalletResponse, error) {
	opts := wallet.ImportOptions{SetDefault: req.SetDefault}

	var (
		w   *model.StoredWallet
		err error
	)
	switch {
	case req.Seed != "" && req.Mnemonic != "":
		return nil, fmt.Errorf("%w: give either a seed or a mnemonic", ErrInvalidRequest)
	case req.Seed != "":
		w, err = s.wallets.ImportFromSeed(ctx, req.Name, req.Seed, opts)
	case req.Mnemonic != "":
		w, err = s.wallets.ImportFromMnemonic(ctx, req.Name, crypto.SplitMnemonic(req.Mnemonic), req.Passphrase, opts)
	default:
		return nil, fmt.Errorf("%w: a seed or a mnemonic is required", ErrInvalidRequest)
	}
	if err != nil {
		return nil, err
	}
	return s.walletResponse(w, "Wallet imported successfully"), nil
}

func (s *Service) walletResponse(w *model.StoredWallet, message string) *model.CreateWalletResponse {
	def, _ := s.wallets.DefaultName()
	return &model.CreateWalletResponse{
		Success:   true,
		Message:   message,
		Name:      w.Name,
		Network:   w.Network,
		Addresses: w.Addresses,
		IsDefault: def == w.Name,
	}
}

// ListWallets returns every stored wallet.
func (s *Service) ListWallets() model.ListWalletsResponse {
	def, _ := s.wallets.DefaultName()
	resp := model.ListWalletsResponse{
		Default: def,
		Wallets: []model.WalletSummary{},
	}
	for _, w := range s.wallets.List() {
		resp.Wallets = append(resp.Wallets, model.WalletSummary{
			Name:       w.Name,
			Network:    w.Network,
			Unshielded: w.Addresses.Unshielded,
			Shielded:   w.Addresses.Shielded,
			IsDefault:  w.Name == def,
			CreatedAt:  w.CreatedAt,
		})
	}
	return resp
}

// SetDefault marks a wallet as the default.
func (s *Service) SetDefault(name string) error {
	return s.wallets.SetDefault(name)
}

// RemoveWallet deletes a wallet.
func (s *Service) RemoveWallet(name string) error {
	return s.wallets.Remove(name)
}

// Addresses returns the addresses of a wallet, the default one when name is
// empty. withQR adds a base64 PNG QR code of the unshielded address.
func (s *Service) Addresses(ctx context.Context, name string, withQR bool) (*model.AddressResponse, error) {
	resolved, err := s.wallets.Resolve(ctx, name, false)
	if err != nil {
		return nil, err
	}
	w := resolved.Wallet
	resp := &model.AddressResponse{
		Name:      w.Name,
		Network:   w.Network,
		Addresses: w.Addresses,
	}
	if withQR {
		resp.QR, err = generateQRCode(w.Addresses.Unshielded)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// EncryptWallets seals every plaintext seed with password.
func (s *Service) EncryptWallets(password []byte, opts ...crypto.EncryptedOpt) (int, error) {
	store, err := crypto.NewEncryptedStore(password, opts...)
	if err != nil {
		return 0, err
	}
	return s.wallets.Reseal(store)
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(qrSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

// TerminalQR renders text as a QR code made of block characters.
func TerminalQR(text string) (string, error) {
	qr, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr.ToSmallString(false), nil
}
