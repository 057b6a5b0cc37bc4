package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
	"github.com/AlexZinkM/midnightctl/midnight"
)

var phaseMessages = map[transfer.Phase]string{
	transfer.PhaseSyncing:    "Syncing wallet...",
	transfer.PhasePreparing:  "Preparing transaction...",
	transfer.PhaseProving:    "Generating proof (this can take a few minutes)...",
	transfer.PhaseSubmitting: "Submitting transaction...",
}

// sendOptions reports progress on the console unless JSON output is on.
func (a *app) sendOptions() (midnight.SendOptions, func()) {
	if a.jsonOutput {
		return midnight.SendOptions{}, func() {}
	}
	syncing := false
	endSync := func() {
		if syncing {
			a.out.EndProgress()
			syncing = false
		}
	}
	return midnight.SendOptions{
		OnPhase: func(p transfer.Phase) {
			endSync()
			if msg, ok := phaseMessages[p]; ok {
				a.out.Step("%s", msg)
			}
		},
		OnProgress: func(syncedIndex, remainingLag int64) {
			syncing = true
			a.out.Progress(syncedIndex, remainingLag)
		},
	}, endSync
}

func (a *app) sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send [from] <to-address> <amount>",
		Short: "Send NIGHT to a shielded address",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.SendRequest{From: a.walletName}
			if len(args) == 3 {
				req.From, args = args[0], args[1:]
			}
			req.ToAddress, req.Amount = args[0], args[1]

			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if !a.jsonOutput {
				a.out.Title("Sending Transaction")
				a.out.Field("To", short(req.ToAddress))
				a.out.Field("Amount", req.Amount+" NIGHT")
				a.out.Line("")
			}

			opts, endSync := a.sendOptions()
			resp, err := svc.Send(cmd.Context(), req, opts)
			endSync()
			if err != nil {
				return err
			}
			return a.printTransfer(resp)
		},
	}
}

func (a *app) fundCmd() *cobra.Command {
	var genesis int
	cmd := &cobra.Command{
		Use:   "fund [name] [amount]",
		Short: "Fund a wallet from a genesis wallet on a local network",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := midnight.FundRequest{
				Name:         a.resolveName(args, 0),
				GenesisIndex: genesis,
			}
			if len(args) == 2 {
				req.Amount = args[1]
			}

			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if !a.jsonOutput {
				amount := req.Amount
				if amount == "" {
					amount = midnight.DefaultFundAmount
				}
				a.out.Title("Funding Wallet")
				a.out.Field("Network", network.DisplayName(svc.Network().Network))
				a.out.Field("From", "genesis wallet "+strconv.Itoa(genesis))
				a.out.Field("Amount", amount+" NIGHT")
				a.out.Line("")
			}

			opts, endSync := a.sendOptions()
			resp, err := svc.Fund(cmd.Context(), req, opts)
			endSync()
			if err != nil {
				return err
			}
			return a.printTransfer(resp)
		},
	}
	cmd.Flags().IntVar(&genesis, "from", 1, "genesis wallet index (1-4)")
	return cmd
}

func (a *app) printTransfer(resp *model.SendResponse) error {
	if a.jsonOutput {
		return a.out.JSON(resp)
	}
	a.out.Success("Transaction submitted!")
	a.out.Line("")
	a.out.Field("Transaction", resp.TxID)
	a.out.Field("From", resp.From)
	a.out.Field("To", short(resp.ToAddress))
	a.out.Field("Amount", resp.Amount+" NIGHT")
	a.out.Line("")
	return nil
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
