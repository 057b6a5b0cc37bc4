package main

import (
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/midnight"
)

func (a *app) registerDustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register-dust [name]",
		Short: "Register a wallet for DUST generation",
		Long: "Register a wallet's unshielded NIGHT for DUST generation. DUST is the " +
			"non-transferable fee resource; it regenerates based on NIGHT holdings.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			name := a.resolveName(args, 0)

			var opts midnight.DustOptions
			syncing := false
			if !a.jsonOutput {
				a.out.Title("DUST Registration")
				a.out.Field("Network", network.DisplayName(svc.Network().Network))
				a.out.Line("")
				a.out.Info("Syncing wallet...")
				opts.OnProgress = func(syncedIndex, remainingLag int64) {
					syncing = true
					a.out.Progress(syncedIndex, remainingLag)
				}
				opts.OnSyncTimeout = func() {
					if syncing {
						a.out.EndProgress()
						syncing = false
					}
					a.out.Warn("Wallet sync timed out after %s. Attempting registration anyway.", a.cfg.SyncTimeout)
				}
			}

			resp, err := svc.RegisterDust(cmd.Context(), name, opts)
			if syncing {
				a.out.EndProgress()
			}
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.out.JSON(resp)
			}
			a.out.Success("DUST registration submitted")
			a.out.Field("Wallet", resp.Wallet)
			a.out.Field("Address", resp.Address)
			if resp.TxID != "submitted" {
				a.out.Field("Transaction", resp.TxID)
			}
			a.out.Line("")
			a.out.Info("The wallet now regenerates DUST from its NIGHT holdings. Run `midnightctl balance %s` to check.", resp.Wallet)
			return nil
		},
	}
}
