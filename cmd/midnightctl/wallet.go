package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/midnight"
)

func (a *app) createCmd() *cobra.Command {
	var (
		words      int
		setDefault bool
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if !a.jsonOutput {
				a.out.Title("Creating Wallet: " + args[0])
			}
			resp, err := svc.CreateWallet(cmd.Context(), midnight.CreateRequest{
				Name:       args[0],
				WordCount:  words,
				SetDefault: setDefault,
			})
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.out.JSON(resp)
			}
			a.printWallet(resp, svc.Network())
			a.out.Mnemonic(resp.Mnemonic)
			a.out.Success("Wallet %q created", resp.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&words, "words", 24, "mnemonic word count (12 or 24)")
	cmd.Flags().BoolVarP(&setDefault, "set-default", "d", false, "set as default wallet")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	var (
		seed       string
		mnemonic   bool
		passphrase string
		setDefault bool
	)
	cmd := &cobra.Command{
		Use:   "import <name>",
		Short: "Import a wallet from a hex seed or a mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := midnight.ImportRequest{
				Name:       args[0],
				Seed:       seed,
				Passphrase: passphrase,
				SetDefault: setDefault,
			}
			if mnemonic {
				phrase, err := readMnemonic(a)
				if err != nil {
					return err
				}
				req.Mnemonic = phrase
			}

			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.ImportWallet(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.out.JSON(resp)
			}
			a.out.Title("Imported Wallet: " + resp.Name)
			a.printWallet(resp, svc.Network())
			a.out.Success("Wallet %q imported", resp.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&seed, "seed", "s", "", "import from a 64 character hex seed")
	cmd.Flags().BoolVarP(&mnemonic, "mnemonic", "m", false, "import from a mnemonic read from stdin")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "BIP39 passphrase for the mnemonic")
	cmd.Flags().BoolVarP(&setDefault, "set-default", "d", false, "set as default wallet")
	cmd.MarkFlagsMutuallyExclusive("seed", "mnemonic")
	return cmd
}

func readMnemonic(a *app) (string, error) {
	if !a.jsonOutput {
		a.out.Step("Enter the mnemonic words separated by spaces:")
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read mnemonic: %w", err)
	}
	phrase := strings.TrimSpace(line)
	if phrase == "" {
		return "", fmt.Errorf("%w: empty mnemonic", midnight.ErrInvalidRequest)
	}
	return phrase, nil
}

func (a *app) printWallet(resp *model.CreateWalletResponse, detected network.Detection) {
	a.out.Field("Name", resp.Name)
	a.out.Field("Network", fmt.Sprintf("%s (%s)", network.DisplayName(detected.Network), detected.Source))
	a.out.Field("Unshielded", resp.Addresses.Unshielded)
	if resp.Addresses.Shielded != "" {
		a.out.Field("Shielded", resp.Addresses.Shielded)
	}
	if resp.Addresses.Dust != "" {
		a.out.Field("Dust", resp.Addresses.Dust)
	}
	if resp.IsDefault {
		a.out.Field("Default", "yes")
	}
	a.out.Line("")
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			resp := svc.ListWallets()
			if a.jsonOutput {
				return a.out.JSON(resp)
			}
			if len(resp.Wallets) == 0 {
				a.out.Info("No wallets found. Run `midnightctl create <name>` to create one.")
				return nil
			}
			a.out.Title(fmt.Sprintf("Wallets (%d)", len(resp.Wallets)))
			for _, w := range resp.Wallets {
				marker := " "
				if w.IsDefault {
					marker = "*"
				}
				a.out.Line("  %s %-16s %-12s %s", marker, w.Name, w.Network, short(w.Unshielded))
			}
			a.out.Line("")
			return nil
		},
	}
}

func (a *app) setDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <name>",
		Short: "Set the default wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.SetDefault(args[0]); err != nil {
				return err
			}
			if a.jsonOutput {
				return a.out.JSON(map[string]any{"success": true, "default": args[0]})
			}
			a.out.Success("Default wallet set to %q", args[0])
			return nil
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.RemoveWallet(args[0]); err != nil {
				return err
			}
			if a.jsonOutput {
				return a.out.JSON(map[string]any{"success": true, "removed": args[0]})
			}
			a.out.Success("Wallet %q removed", args[0])
			return nil
		},
	}
}

func (a *app) addressCmd() *cobra.Command {
	var withQR bool
	cmd := &cobra.Command{
		Use:   "address [name]",
		Short: "Show the addresses of a wallet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			// The PNG QR code is only useful to JSON consumers.
			resp, err := svc.Addresses(cmd.Context(), a.resolveName(args, 0), withQR && a.jsonOutput)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.out.JSON(resp)
			}
			a.out.Title("Wallet Addresses: " + resp.Name)
			a.out.Field("Network", network.DisplayName(resp.Network))
			a.out.Field("Unshielded", resp.Addresses.Unshielded)
			if resp.Addresses.Shielded != "" {
				a.out.Field("Shielded", resp.Addresses.Shielded)
			}
			if resp.Addresses.Dust != "" {
				a.out.Field("Dust", resp.Addresses.Dust)
			}
			a.out.Line("")
			if withQR {
				qr, err := midnight.TerminalQR(resp.Addresses.Unshielded)
				if err != nil {
					return err
				}
				a.out.Line("%s", qr)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withQR, "qr", false, "show a QR code of the unshielded address")
	return cmd
}

func (a *app) encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt every plaintext wallet seed with a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.PasswordPrompt {
				return errors.New("wallets are already opened with a password: unset MIDNIGHT_WALLET_PASSWORD_PROMPT to encrypt a plaintext store")
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}

			password, err := promptNewPassword(a)
			if err != nil {
				return err
			}
			defer clear(password)

			n, err := svc.EncryptWallets(password)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.out.JSON(map[string]any{"success": true, "encrypted": n})
			}
			a.out.Success("Encrypted %d wallet(s)", n)
			a.out.Info("Set MIDNIGHT_WALLET_PASSWORD_PROMPT=true to use them.")
			return nil
		},
	}
}

func promptNewPassword(a *app) ([]byte, error) {
	password, err := config.PromptForPassword()
	if err != nil {
		return nil, err
	}
	a.out.Step("Repeat the password to confirm")
	confirm, err := config.PromptForPassword()
	if err != nil {
		clear(password)
		return nil, err
	}
	defer clear(confirm)
	if !bytes.Equal(password, confirm) {
		clear(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}
