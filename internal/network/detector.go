// Package network resolves which Midnight network a session targets.
package network

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/model"
)

// Source tells where a detected network came from.
type Source string

const (
	SourceEnv        Source = "env"
	SourceNode       Source = "node"
	SourceURLPattern Source = "url-pattern"
	SourceDefault    Source = "default"
)

// Confidence grades a detection.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const nodeQueryTimeout = 5 * time.Second

// ErrQueryUnavailable is returned by queriers that cannot ask the node.
var ErrQueryUnavailable = errors.New("node network query not available")

// Detection is the result of Detect.
type Detection struct {
	Network    model.NetworkID `json:"network"`
	Source     Source          `json:"source"`
	Confidence Confidence      `json:"confidence"`
}

type noopQuerier struct{}

func (noopQuerier) QueryNetwork(context.Context, string) (model.NetworkID, error) {
	return "", ErrQueryUnavailable
}

// Detector picks the active network: explicit override, then node query,
// then service URL patterns, then standalone.
type Detector struct {
	override string
	services config.ServiceURLs
	querier  NodeQuerier
	logger   *zap.Logger
}

// Opt configures a Detector.
type Opt func(*Detector)

// WithQuerier sets the querier used for live node detection.
func WithQuerier(q NodeQuerier) Opt {
	return func(d *Detector) {
		d.querier = q
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(d *Detector) {
		d.logger = logger
	}
}

// NewDetector creates a Detector for an override value and service endpoints.
func NewDetector(override string, services config.ServiceURLs, opts ...Opt) *Detector {
	d := &Detector{
		override: strings.TrimSpace(override),
		services: services,
		querier:  noopQuerier{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromConfig creates a Detector from the application config.
func FromConfig(cfg *config.Config, opts ...Opt) *Detector {
	return NewDetector(cfg.ChainEnvironment, cfg.Services, opts...)
}

// Detect resolves the network. It always produces a result.
func (d *Detector) Detect(ctx context.Context) Detection {
	if d.override != "" {
		if n := model.NetworkID(d.override); n.IsValid() {
			return Detection{Network: n, Source: SourceEnv, Confidence: ConfidenceHigh}
		}
		d.logger.Warn("ignoring unknown CHAIN_ENVIRONMENT", zap.String("value", d.override))
	}

	if d.services.NodeWsURL != "" {
		qctx, cancel := context.WithTimeout(ctx, nodeQueryTimeout)
		n, err := d.querier.QueryNetwork(qctx, d.services.NodeWsURL)
		cancel()
		switch {
		case err == nil && n.IsValid():
			return Detection{Network: n, Source: SourceNode, Confidence: ConfidenceHigh}
		case err == nil:
			d.logger.Debug("node reported unknown network", zap.String("network", string(n)))
		case !errors.Is(err, ErrQueryUnavailable):
			d.logger.Debug("node network query failed", zap.Error(err))
		}
	}

	for _, url := range []string{d.services.NodeWsURL, d.services.IndexerURL} {
		if n, ok := FromURL(url); ok {
			return Detection{Network: n, Source: SourceURLPattern, Confidence: ConfidenceMedium}
		}
	}

	return Detection{Network: model.NetworkStandalone, Source: SourceDefault, Confidence: ConfidenceLow}
}

var urlPatterns = []struct {
	needle  string
	network model.NetworkID
}{
	{"mainnet", model.NetworkMainNet},
	{"testnet", model.NetworkTestNet},
	{"devnet", model.NetworkDevNet},
	{"qanet", model.NetworkQaNet},
	{"preview", model.NetworkPreview},
	{"preprod", model.NetworkPreProd},
	{"localhost", model.NetworkStandalone},
	{"127.0.0.1", model.NetworkStandalone},
}

// FromURL guesses a network from a service URL.
func FromURL(url string) (model.NetworkID, bool) {
	if url == "" {
		return "", false
	}
	lower := strings.ToLower(url)
	for _, p := range urlPatterns {
		if strings.Contains(lower, p.needle) {
			return p.network, true
		}
	}
	return "", false
}
