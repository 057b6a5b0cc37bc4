package model

// AddressType is the type segment of an address prefix.
type AddressType string

const (
	AddressUnshielded AddressType = "addr"
	AddressShielded   AddressType = "shield-addr"
	AddressDust       AddressType = "dust"
	AddressContract   AddressType = "contract"
)

// AddressTypes lists every known address type.
var AddressTypes = []AddressType{
	AddressUnshielded,
	AddressShielded,
	AddressDust,
	AddressContract,
}

// IsValid reports whether t is a known address type.
func (t AddressType) IsValid() bool {
	for _, known := range AddressTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParsedAddress is a decoded address. Re-encoding Type, Network and Data
// yields Original.
type ParsedAddress struct {
	Type     AddressType `json:"type"`
	Network  NetworkID   `json:"network"`
	Data     []byte      `json:"-"`
	Original string      `json:"address"`
}

// ValidateAddressRequest represents request for POST /address/validate
type ValidateAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// ValidateAddressResponse represents response for POST /address/validate
type ValidateAddressResponse struct {
	Valid    bool        `json:"valid"`
	Type     AddressType `json:"type,omitempty"`
	TypeName string      `json:"typeName,omitempty"`
	Network  NetworkID   `json:"network,omitempty"`
	Error    string      `json:"error,omitempty"`
}
