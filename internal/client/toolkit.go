package client

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

// DefaultToolkitPath is the toolkit binary looked up on PATH.
const DefaultToolkitPath = "midnight-node-toolkit"

// ErrToolkitUnavailable is returned when the toolkit binary cannot be found.
var ErrToolkitUnavailable = errors.New("midnight-node-toolkit not available")

// ToolkitInstallInstructions tells the user how to get the toolkit binary.
const ToolkitInstallInstructions = `Wallet operations require the midnight-node-toolkit binary.

To install the toolkit:

  1. Pull the toolkit Docker image:
     docker pull midnightntwrk/midnight-node-toolkit:0.18.0

  2. Copy the binary out of the image:
     docker run --rm -v /usr/local/bin:/out midnightntwrk/midnight-node-toolkit:0.18.0 \
       cp /usr/bin/midnight-node-toolkit /out/

  Or set MIDNIGHT_TOOLKIT_PATH to point to an existing binary.`

// ToolkitError carries the stderr of a failed toolkit run.
type ToolkitError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ToolkitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("toolkit %s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("toolkit %s failed: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *ToolkitError) Unwrap() error {
	return e.Err
}

type execRunner struct{}

func (execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		cmdName := ""
		if len(args) > 0 {
			cmdName = args[0]
		}
		return nil, &ToolkitError{Command: cmdName, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}

// ExecRunner runs programs with os/exec.
func ExecRunner() Runner {
	return execRunner{}
}

// WalletState is the toolkit's view of a wallet.
type WalletState struct {
	SyncedIndex int64  `json:"syncedIndex"`
	ChainIndex  int64  `json:"chainIndex"`
	Unshielded  uint64 `json:"unshielded,string"`
	Shielded    uint64 `json:"shielded,string"`
	DustCoins   uint64 `json:"dustCoins"`
}

// Toolkit wraps the midnight-node-toolkit binary. Every seed argument is the
// hex form of a 32 byte wallet seed.
type Toolkit struct {
	path      string
	nodeWsURL string
	runner    Runner
	logger    *zap.Logger
}

type ToolkitOpt func(*Toolkit)

func WithRunner(r Runner) ToolkitOpt {
	return func(t *Toolkit) {
		t.runner = r
	}
}

func WithToolkitLogger(logger *zap.Logger) ToolkitOpt {
	return func(t *Toolkit) {
		t.logger = logger
	}
}

// NewToolkit creates a Toolkit for the binary at path talking to nodeWsURL.
func NewToolkit(path, nodeWsURL string, opts ...ToolkitOpt) *Toolkit {
	if path == "" {
		path = DefaultToolkitPath
	}
	t := &Toolkit{
		path:      path,
		nodeWsURL: nodeWsURL,
		runner:    execRunner{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Available fails with ErrToolkitUnavailable when the binary cannot be found.
func (t *Toolkit) Available() error {
	if _, err := t.runner.LookPath(t.path); err != nil {
		return fmt.Errorf("%w: %s\n\n%s", ErrToolkitUnavailable, t.path, ToolkitInstallInstructions)
	}
	return nil
}

func (t *Toolkit) run(ctx context.Context, args ...string) ([]byte, error) {
	if err := t.Available(); err != nil {
		return nil, err
	}
	t.logger.Debug("running toolkit", zap.String("command", args[0]))
	out, err := t.runner.Run(ctx, t.path, args...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type toolkitAddresses struct {
	Unshielded string `json:"unshielded"`
	Shielded   string `json:"shielded"`
	Dust       string `json:"dust"`
}

// DeriveAddresses derives the addresses of seed on network.
func (t *Toolkit) DeriveAddresses(ctx context.Context, seed []byte, network model.NetworkID) (model.WalletAddresses, error) {
	out, err := t.run(ctx, "show-address",
		"--network", string(network),
		"--seed", hex.EncodeToString(seed))
	if err != nil {
		return model.WalletAddresses{}, err
	}

	var addrs toolkitAddresses
	if err := json.Unmarshal(out, &addrs); err != nil {
		return model.WalletAddresses{}, fmt.Errorf("failed to parse toolkit addresses: %w", err)
	}
	if addrs.Unshielded == "" {
		return model.WalletAddresses{}, errors.New("toolkit returned no unshielded address")
	}
	return model.WalletAddresses{
		Unshielded: addrs.Unshielded,
		Shielded:   addrs.Shielded,
		Dust:       addrs.Dust,
	}, nil
}

// ShowWallet syncs seed against the node and reports its state.
func (t *Toolkit) ShowWallet(ctx context.Context, seed []byte) (WalletState, error) {
	out, err := t.run(ctx, "show-wallet",
		"--src-url", t.nodeWsURL,
		"--seed", hex.EncodeToString(seed))
	if err != nil {
		return WalletState{}, err
	}

	var state WalletState
	if err := json.Unmarshal(out, &state); err != nil {
		return WalletState{}, fmt.Errorf("failed to parse toolkit wallet state: %w", err)
	}
	return state, nil
}

// BuildTransfer builds an unproven shielded transfer of intent from seed.
func (t *Toolkit) BuildTransfer(ctx context.Context, seed []byte, intent model.TransferIntent) ([]byte, error) {
	out, err := t.run(ctx, "generate-txs",
		"--src-url", t.nodeWsURL,
		"--to-bytes",
		"single-tx",
		"--source-seed", hex.EncodeToString(seed),
		"--destination-address", intent.Recipient.Original,
		"--shielded-amount", strconv.FormatUint(intent.Amount, 10),
		"--ttl", strconv.FormatInt(intent.TTL.Unix(), 10))
	if err != nil {
		return nil, err
	}

	text := strings.TrimPrefix(strings.TrimSpace(string(out)), "0x")
	tx, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode toolkit transaction: %w", err)
	}
	if len(tx) == 0 {
		return nil, errors.New("toolkit returned an empty transaction")
	}
	return tx, nil
}

// RegisterDust submits a DUST registration for the unshielded NIGHT of seed
// and returns the transaction id the toolkit reports, "submitted" when it
// reports none.
func (t *Toolkit) RegisterDust(ctx context.Context, seed []byte) (string, error) {
	out, err := t.run(ctx, "generate-txs",
		"--src-url", t.nodeWsURL,
		"--dest-url", t.nodeWsURL,
		"register-dust-address",
		"--wallet-seed", hex.EncodeToString(seed))
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	txID := strings.TrimSpace(lines[len(lines)-1])
	if txID == "" {
		return "submitted", nil
	}
	return txID, nil
}
