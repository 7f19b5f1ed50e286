package bootstrap

import "github.com/dmitrymomot/clientenv/pkg/clientinfo"

// Flags is the initialization payload passed to the client application entry point.
type Flags struct {
	Seed           Seed                  `json:"seed"`
	AppID          string                `json:"appId"`
	IdentityPoolID string                `json:"identityPoolId"`
	Region         string                `json:"region"`
	ProjectID      string                `json:"projectId,omitempty"`
	ClientInfo     clientinfo.Descriptor `json:"clientInfo"`
}

// NewFlags merges configuration, seed material and the client descriptor.
func NewFlags(cfg Config, seed Seed, info clientinfo.Descriptor) Flags {
	return Flags{
		Seed:           seed,
		AppID:          cfg.AppID,
		IdentityPoolID: cfg.IdentityPoolID,
		Region:         cfg.Region,
		ProjectID:      cfg.ProjectID,
		ClientInfo:     info,
	}
}
