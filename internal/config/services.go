package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	defaultNodeURL        = "ws://localhost:9944"
	defaultIndexerURL     = "http://localhost:8088"
	defaultProofServerURL = "http://localhost:6300"

	indexerGraphQLPath   = "/api/v3/graphql"
	indexerGraphQLWsPath = "/api/v3/graphql/ws"
)

// ErrServiceUnavailable is returned when a required service endpoint is not configured.
var ErrServiceUnavailable = errors.New("service unavailable")

// ServiceURLs are the endpoints of the services a wallet talks to.
type ServiceURLs struct {
	NodeURL        string // http(s) form of the node endpoint
	NodeWsURL      string
	IndexerURL     string
	IndexerWsURL   string
	ProofServerURL string
}

// Validate fails with ErrServiceUnavailable naming every missing endpoint.
func (s ServiceURLs) Validate() error {
	var missing []string
	if s.NodeWsURL == "" {
		missing = append(missing, "MIDNIGHT_NODE_URL")
	}
	if s.IndexerURL == "" {
		missing = append(missing, "INDEXER_URL")
	}
	if s.ProofServerURL == "" {
		missing = append(missing, "PROOF_SERVER_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing service configuration: %s. Set these environment variables or check your .env file",
			ErrServiceUnavailable, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) deriveServices() ServiceURLs {
	local := !c.IsWorkstation()

	nodeWs := orDefault(c.NodeURL, defaultNodeURL, local)
	nodeHTTP := strings.Replace(nodeWs, "ws://", "http://", 1)
	nodeHTTP = strings.Replace(nodeHTTP, "wss://", "https://", 1)

	indexer := orDefault(c.IndexerURL, defaultIndexerURL, local)
	if indexer != "" && !strings.Contains(indexer, indexerGraphQLPath) {
		indexer = strings.TrimSuffix(indexer, "/") + indexerGraphQLPath
	}

	indexerWs := c.IndexerWsURL
	switch {
	case indexerWs == "" && indexer != "":
		indexerWs = strings.Replace(indexer, "http://", "ws://", 1)
		indexerWs = strings.Replace(indexerWs, "https://", "wss://", 1)
		indexerWs = strings.Replace(indexerWs, indexerGraphQLPath, indexerGraphQLWsPath, 1)
	case indexerWs != "" && !strings.Contains(indexerWs, indexerGraphQLWsPath):
		indexerWs = strings.TrimSuffix(indexerWs, "/") + indexerGraphQLWsPath
	}

	return ServiceURLs{
		NodeURL:        nodeHTTP,
		NodeWsURL:      nodeWs,
		IndexerURL:     indexer,
		IndexerWsURL:   indexerWs,
		ProofServerURL: orDefault(c.ProofServerURL, defaultProofServerURL, local),
	}
}

func orDefault(v, def string, useDefault bool) string {
	if v != "" {
		return v
	}
	if useDefault {
		return def
	}
	return ""
}
