package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/midnightctl/internal/client"
	"github.com/AlexZinkM/midnightctl/internal/model"
)

const checkTimeout = 10 * time.Second

type serviceStatus struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	OK    bool   `json:"ok"`
	Info  string `json:"info,omitempty"`
	Error string `json:"error,omitempty"`
}

type networkOutput struct {
	model.NetworkResponse
	Services []serviceStatus `json:"services,omitempty"`
}

func (a *app) networkCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show the detected network and service endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out := networkOutput{NetworkResponse: svc.NetworkInfo()}
			if check {
				out.Services = a.checkServices(cmd.Context())
			}
			if a.jsonOutput {
				return a.out.JSON(out)
			}

			a.out.Title("Network: " + out.DisplayName)
			a.out.Field("Network", string(out.Network))
			a.out.Field("Detected by", out.Source+" ("+out.Confidence+" confidence)")
			a.out.Field("Node", orNone(out.NodeURL))
			a.out.Field("Indexer", orNone(out.IndexerURL))
			a.out.Field("Indexer WS", orNone(out.IndexerWsURL))
			a.out.Field("Proof server", orNone(out.ProofServerURL))
			a.out.Line("")
			for _, s := range out.Services {
				if s.OK {
					a.out.Success("%s reachable %s", s.Name, s.Info)
				} else {
					a.out.Warn("%s: %s", s.Name, s.Error)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check that the node and the proof server respond")
	return cmd
}

func (a *app) checkServices(ctx context.Context) []serviceStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	services := a.cfg.Services
	node := serviceStatus{Name: "node", URL: services.NodeURL}
	if services.NodeURL == "" {
		node.Error = "not configured"
	} else {
		nc := client.NewNodeClient(services.NodeURL,
			client.WithNodeLogger(a.logger.Named("node")),
			client.WithNodeRetries(0, 0))
		chain, err := nc.SystemChain(ctx)
		if err != nil {
			node.Error = err.Error()
		} else {
			node.OK, node.Info = true, "("+chain+")"
		}
	}

	prover := serviceStatus{Name: "proof server", URL: services.ProofServerURL}
	if services.ProofServerURL == "" {
		prover.Error = "not configured"
	} else if pc, err := client.NewProverClient(services.ProofServerURL,
		client.WithProverLogger(a.logger.Named("prover")),
		client.WithProverRetries(0, 0)); err != nil {
		prover.Error = err.Error()
	} else if err := pc.Health(ctx); err != nil {
		prover.Error = err.Error()
	} else {
		prover.OK = true
	}

	return []serviceStatus{node, prover}
}

func orNone(v string) string {
	if v == "" {
		return "(not configured)"
	}
	return v
}
