package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// It is built once by Load and passed to every component; nothing else
// reads the process environment.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	ChainEnvironment string `envconfig:"CHAIN_ENVIRONMENT"`
	WorkstationID    string `envconfig:"WORKSTATION_ID"`
	NodeURL          string `envconfig:"MIDNIGHT_NODE_URL"`
	IndexerURL       string `envconfig:"INDEXER_URL"`
	IndexerWsURL     string `envconfig:"INDEXER_WS_URL"`
	ProofServerURL   string `envconfig:"PROOF_SERVER_URL"`

	ToolkitPath string `envconfig:"MIDNIGHT_TOOLKIT_PATH" default:"midnight-node-toolkit"`
	QueryNode   bool   `envconfig:"MIDNIGHT_QUERY_NODE" default:"false"`

	SyncTimeout      time.Duration `envconfig:"SYNC_TIMEOUT" default:"120s"`
	SyncThrottle     time.Duration `envconfig:"SYNC_THROTTLE" default:"5s"`
	SyncPollInterval time.Duration `envconfig:"SYNC_POLL_INTERVAL" default:"2s"`

	// PasswordPrompt switches the wallet store to encrypted seeds unlocked
	// with a terminal prompt.
	PasswordPrompt bool `envconfig:"MIDNIGHT_WALLET_PASSWORD_PROMPT" default:"false"`

	Services ServiceURLs `ignored:"true"`
}

// Load reads configuration from environment variables and derives the service URLs.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	cfg.Services = cfg.deriveServices()
	return cfg, nil
}

// IsWorkstation reports whether the CLI runs on a hosted workstation,
// where no local service defaults apply.
func (c *Config) IsWorkstation() bool {
	return c.WorkstationID != ""
}

var passwordPrompt = "Enter wallet password: "

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing. Caller must zero the returned slice after use.
func PromptForPassword() ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the command interactively to enter password")
	}
	fmt.Fprint(os.Stderr, passwordPrompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	password := make([]byte, len(raw))
	copy(password, raw)
	clear(raw)
	return password, nil
}

// LogLevelOrDefault returns the configured level, "info" when unset.
func (c *Config) LogLevelOrDefault() string {
	if lvl := strings.TrimSpace(c.LogLevel); lvl != "" {
		return lvl
	}
	return "info"
}
