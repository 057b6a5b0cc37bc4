package midnight

import (
	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
)

// NetworkInfo describes the detected network and the configured services.
func (s *Service) NetworkInfo() model.NetworkResponse {
	services := s.cfg.Services
	return model.NetworkResponse{
		Network:        s.detection.Network,
		DisplayName:    network.DisplayName(s.detection.Network),
		Source:         string(s.detection.Source),
		Confidence:     string(s.detection.Confidence),
		NodeURL:        services.NodeWsURL,
		IndexerURL:     services.IndexerURL,
		IndexerWsURL:   services.IndexerWsURL,
		ProofServerURL: services.ProofServerURL,
	}
}

// ValidateAddress checks an address. Invalid input is reported in the
// response, never as an error.
func ValidateAddress(text string) model.ValidateAddressResponse {
	v := address.Validate(text)
	if !v.Valid {
		return model.ValidateAddressResponse{Error: v.Err.Error()}
	}
	return model.ValidateAddressResponse{
		Valid:    true,
		Type:     v.Parsed.Type,
		TypeName: address.TypeName(v.Parsed.Type),
		Network:  v.Parsed.Network,
	}
}
