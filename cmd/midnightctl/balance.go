package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
	"github.com/AlexZinkM/midnightctl/midnight"
)

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [name]",
		Short: "Sync a wallet and show its balance",
		Long: "Sync a wallet and show its balance. Without a name the default wallet is used; " +
			"when no wallet exists a default one is created.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			name := a.resolveName(args, 0)

			opts := midnight.BalanceOptions{AutoCreate: name == ""}
			if !a.jsonOutput {
				a.out.Info("Connecting to services...")
				opts.OnProgress = a.out.Progress
			}
			resp, err := svc.GetBalance(cmd.Context(), name, opts)
			if opts.OnProgress != nil {
				a.out.EndProgress()
			}
			timedOut := errors.Is(err, transfer.ErrSyncTimeout) && resp != nil
			if err != nil && !timedOut {
				if resp != nil && len(resp.Mnemonic) > 0 {
					a.showCreated(resp)
				}
				return err
			}

			if a.jsonOutput {
				return a.out.JSON(resp)
			}
			if len(resp.Mnemonic) > 0 {
				a.showCreated(resp)
			}
			a.out.Title("Wallet Balance: " + resp.Name)
			a.out.Field("Network", network.DisplayName(svc.Network().Network))
			a.out.Field("Address", resp.Address)
			a.out.Line("")
			a.out.Field("Unshielded", resp.Unshielded+" NIGHT")
			a.out.Field("Shielded", resp.Shielded+" NIGHT")
			a.out.Field("Total", resp.Total+" NIGHT")
			a.out.Field("Dust coins", itoa(resp.DustCoins))
			a.out.Line("")
			if timedOut {
				a.out.Warn("%s", err)
			}
			if resp.Total == "0.000000" && network.IsFundable(svc.Network().Network) {
				a.out.Info("Wallet is unfunded. Run `midnightctl fund %s` to fund it from genesis.", resp.Name)
			}
			return nil
		},
	}
}

// showCreated prints the mnemonic of a wallet created on demand.
func (a *app) showCreated(resp *model.BalanceResponse) {
	if a.jsonOutput {
		_ = a.out.JSON(resp)
		return
	}
	a.out.Title("No wallets found. Created default wallet")
	a.out.Mnemonic(resp.Mnemonic)
}
