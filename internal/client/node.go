package client

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

const (
	methodSystemChain     = "system_chain"
	methodSubmitExtrinsic = "author_submitExtrinsic"
)

var (
	// ErrUnknownChain is returned when a node reports a chain name that maps to no network.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrNodeRejected is returned when the node refuses a transaction.
	ErrNodeRejected = errors.New("node rejected transaction")
)

// NodeClient is a JSON-RPC client for a Midnight node.
type NodeClient struct {
	endpoint  string
	opts      *jsonrpc.RPCClientOpts
	logger    *zap.Logger
	retryMax  int
	retryWait time.Duration
}

type NodeOpt func(*NodeClient)

func WithNodeLogger(logger *zap.Logger) NodeOpt {
	return func(c *NodeClient) {
		c.logger = logger
	}
}

// WithNodeRetries sets how often a failed call is retried and the base wait.
func WithNodeRetries(retryMax int, wait time.Duration) NodeOpt {
	return func(c *NodeClient) {
		c.retryMax = retryMax
		c.retryWait = wait
	}
}

// NewNodeClient creates a client for the node at endpoint. ws and wss
// endpoints are mapped to their http counterparts.
func NewNodeClient(endpoint string, opts ...NodeOpt) *NodeClient {
	c := &NodeClient{
		endpoint:  HTTPEndpoint(endpoint),
		logger:    zap.NewNop(),
		retryMax:  defaultRetryMax,
		retryWait: defaultRetryWait,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.opts = &jsonrpc.RPCClientOpts{
		HTTPClient: newRetryableClient(c.retryMax, c.retryWait, c.logger).StandardClient(),
	}
	return c
}

// Endpoint returns the http endpoint the client calls.
func (c *NodeClient) Endpoint() string {
	return c.endpoint
}

func (c *NodeClient) rpc(endpoint string) jsonrpc.RPCClient {
	return jsonrpc.NewClientWithOpts(endpoint, c.opts)
}

// SystemChain returns the chain name reported by the node.
func (c *NodeClient) SystemChain(ctx context.Context) (string, error) {
	return c.systemChain(ctx, c.endpoint)
}

func (c *NodeClient) systemChain(ctx context.Context, endpoint string) (string, error) {
	rpc := c.rpc(endpoint)
	defer rpc.Close()

	var chain string
	if err := rpc.CallForInto(ctx, &chain, methodSystemChain, nil); err != nil {
		return "", fmt.Errorf("failed to query %s: %w", methodSystemChain, err)
	}
	return chain, nil
}

// QueryNetwork asks the node at nodeURL which network it serves.
func (c *NodeClient) QueryNetwork(ctx context.Context, nodeURL string) (model.NetworkID, error) {
	chain, err := c.systemChain(ctx, HTTPEndpoint(nodeURL))
	if err != nil {
		return "", err
	}
	n, ok := NetworkFromChain(chain)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChain, chain)
	}
	c.logger.Debug("node reported chain", zap.String("chain", chain), zap.Stringer("network", n))
	return n, nil
}

// Submit broadcasts a proven transaction and returns its hash.
func (c *NodeClient) Submit(ctx context.Context, tx []byte) (string, error) {
	rpc := c.rpc(c.endpoint)
	defer rpc.Close()

	var hash string
	err := rpc.CallForInto(ctx, &hash, methodSubmitExtrinsic, []any{"0x" + hex.EncodeToString(tx)})
	if err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return "", fmt.Errorf("%w: %s (code %d)", ErrNodeRejected, rpcErr.Message, rpcErr.Code)
		}
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}
	return hash, nil
}

var chainPatterns = []struct {
	needle  string
	network model.NetworkID
}{
	{"mainnet", model.NetworkMainNet},
	{"testnet", model.NetworkTestNet},
	{"devnet", model.NetworkDevNet},
	{"qanet", model.NetworkQaNet},
	{"preview", model.NetworkPreview},
	{"preprod", model.NetworkPreProd},
	{"undeployed", model.NetworkUndeployed},
	{"development", model.NetworkUndeployed},
	{"local", model.NetworkUndeployed},
}

// NetworkFromChain maps a node's system_chain name to a network.
func NetworkFromChain(chain string) (model.NetworkID, bool) {
	lower := strings.ToLower(chain)
	for _, p := range chainPatterns {
		if strings.Contains(lower, p.needle) {
			return p.network, true
		}
	}
	return "", false
}

// HTTPEndpoint maps ws:// and wss:// urls to http:// and https://.
func HTTPEndpoint(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "ws://"):
		return "http://" + strings.TrimPrefix(endpoint, "ws://")
	case strings.HasPrefix(endpoint, "wss://"):
		return "https://" + strings.TrimPrefix(endpoint, "wss://")
	}
	return endpoint
}
