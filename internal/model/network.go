package model

// NetworkID identifies a Midnight network.
type NetworkID string

const (
	NetworkMainNet    NetworkID = "mainnet"
	NetworkTestNet    NetworkID = "testnet"
	NetworkDevNet     NetworkID = "devnet"
	NetworkQaNet      NetworkID = "qanet"
	NetworkUndeployed NetworkID = "undeployed"
	NetworkPreview    NetworkID = "preview"
	NetworkPreProd    NetworkID = "preprod"
	// NetworkStandalone is the CLI label for a local node. On chain the same
	// network is called "undeployed".
	NetworkStandalone NetworkID = "standalone"
)

// Networks lists every known network id.
var Networks = []NetworkID{
	NetworkMainNet,
	NetworkTestNet,
	NetworkDevNet,
	NetworkQaNet,
	NetworkUndeployed,
	NetworkPreview,
	NetworkPreProd,
	NetworkStandalone,
}

// IsValid reports whether n is a known network id.
func (n NetworkID) IsValid() bool {
	for _, known := range Networks {
		if n == known {
			return true
		}
	}
	return false
}

func (n NetworkID) String() string {
	return string(n)
}

// NetworkResponse represents response for GET /network
type NetworkResponse struct {
	Network        NetworkID `json:"network"`
	DisplayName    string    `json:"displayName"`
	Source         string    `json:"source"`
	Confidence     string    `json:"confidence"`
	NodeURL        string    `json:"nodeUrl,omitempty"`
	IndexerURL     string    `json:"indexerUrl,omitempty"`
	IndexerWsURL   string    `json:"indexerWsUrl,omitempty"`
	ProofServerURL string    `json:"proofServerUrl,omitempty"`
}
