package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AlexZinkM/midnightctl/internal/client"
	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/internal/wallet"
	"github.com/AlexZinkM/midnightctl/midnight"
)

// app holds the state shared by every command of one invocation.
type app struct {
	jsonOutput bool
	walletName string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	out    *printer

	secrets *crypto.EncryptedStore
	svc     *midnight.Service
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		logger: zap.NewNop(),
		out:    newPrinter(stdout, stderr),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "midnightctl",
		Short:         "Manage Midnight wallets",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output as JSON")
	root.PersistentFlags().StringVarP(&a.walletName, "wallet", "w", "", "wallet name (default wallet when empty)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		a.createCmd(),
		a.importCmd(),
		a.listCmd(),
		a.balanceCmd(),
		a.sendCmd(),
		a.fundCmd(),
		a.registerDustCmd(),
		a.setDefaultCmd(),
		a.removeCmd(),
		a.addressCmd(),
		a.networkCmd(),
		a.encryptCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevelOrDefault(), a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LOG_LEVEL: %w", err)
	}
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = !verbose
	return cfg.Build()
}

// service builds the wallet service on first use. Detection and the
// password prompt only run for commands that need them.
func (a *app) service(ctx context.Context) (*midnight.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	var detectorOpts []network.Opt
	detectorOpts = append(detectorOpts, network.WithLogger(a.logger.Named("network")))
	if a.cfg.QueryNode && a.cfg.Services.NodeURL != "" {
		node := client.NewNodeClient(a.cfg.Services.NodeURL, client.WithNodeLogger(a.logger.Named("node")))
		detectorOpts = append(detectorOpts, network.WithQuerier(node))
	}
	detection := network.FromConfig(a.cfg, detectorOpts...).Detect(ctx)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	fs := afero.NewOsFs()

	deps := midnight.Deps{
		Fs:          fs,
		ProjectRoot: wallet.FindProjectRoot(fs, cwd),
		Deriver: client.NewToolkit(a.cfg.ToolkitPath, a.cfg.Services.NodeWsURL,
			client.WithToolkitLogger(a.logger.Named("toolkit"))),
		Open: midnight.ProviderOpener(a.cfg, a.logger.Named("provider")),
	}
	if a.cfg.PasswordPrompt {
		password, err := config.PromptForPassword()
		if err != nil {
			return nil, err
		}
		a.secrets, err = crypto.NewEncryptedStore(password)
		clear(password)
		if err != nil {
			return nil, err
		}
		deps.Secrets = a.secrets
	}

	a.svc = midnight.NewService(a.cfg, detection, deps, midnight.WithLogger(a.logger))
	return a.svc, nil
}

// resolveName prefers an explicit positional name over --wallet.
func (a *app) resolveName(args []string, i int) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return a.walletName
}

func (a *app) reportError(err error) {
	if a.jsonOutput {
		_ = a.out.JSON(midnight.ErrorResponse(err))
		return
	}
	a.out.Error("%s", err)
	if errors.Is(err, config.ErrServiceUnavailable) && a.cfg != nil && !a.cfg.IsWorkstation() {
		a.out.Info("Start the local services or point MIDNIGHT_NODE_URL, INDEXER_URL and PROOF_SERVER_URL at running ones.")
	}
}

func (a *app) close() {
	if a.secrets != nil {
		a.secrets.Wipe()
		a.secrets = nil
	}
	_ = a.logger.Sync()
}
