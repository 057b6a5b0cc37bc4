package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearServiceEnv(t *testing.T) {
	for _, key := range []string{
		"CHAIN_ENVIRONMENT", "WORKSTATION_ID", "MIDNIGHT_NODE_URL", "INDEXER_URL",
		"INDEXER_WS_URL", "PROOF_SERVER_URL", "SYNC_TIMEOUT", "MIDNIGHT_QUERY_NODE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearServiceEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 120*time.Second, cfg.SyncTimeout)
	require.Equal(t, 5*time.Second, cfg.SyncThrottle)
	require.False(t, cfg.QueryNode)

	require.Equal(t, ServiceURLs{
		NodeURL:        "http://localhost:9944",
		NodeWsURL:      "ws://localhost:9944",
		IndexerURL:     "http://localhost:8088/api/v3/graphql",
		IndexerWsURL:   "ws://localhost:8088/api/v3/graphql/ws",
		ProofServerURL: "http://localhost:6300",
	}, cfg.Services)
	require.NoError(t, cfg.Services.Validate())
}

func TestLoadRemoteServices(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("MIDNIGHT_NODE_URL", "wss://rpc.testnet.example.io")
	t.Setenv("INDEXER_URL", "https://indexer.testnet.example.io/")
	t.Setenv("SYNC_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://rpc.testnet.example.io", cfg.Services.NodeURL)
	require.Equal(t, "https://indexer.testnet.example.io/api/v3/graphql", cfg.Services.IndexerURL)
	require.Equal(t, "wss://indexer.testnet.example.io/api/v3/graphql/ws", cfg.Services.IndexerWsURL)
	require.Equal(t, 30*time.Second, cfg.SyncTimeout)
}

func TestLoadIndexerWsWithoutPath(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("INDEXER_WS_URL", "ws://indexer:8088/")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ws://indexer:8088/api/v3/graphql/ws", cfg.Services.IndexerWsURL)
}

func TestWorkstationHasNoDefaults(t *testing.T) {
	clearServiceEnv(t)
	t.Setenv("WORKSTATION_ID", "ws-123")
	t.Setenv("INDEXER_URL", "https://indexer.devnet.example.io")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.Services.NodeWsURL)
	require.Empty(t, cfg.Services.ProofServerURL)

	err = cfg.Services.Validate()
	require.ErrorIs(t, err, ErrServiceUnavailable)
	require.ErrorContains(t, err, "MIDNIGHT_NODE_URL, PROOF_SERVER_URL")
	require.NotContains(t, err.Error(), "INDEXER_URL")
}
