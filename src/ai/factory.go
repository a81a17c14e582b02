package ai

import "time"

// FactoryConfig selects and configures a model provider without leaking
// provider details to callers.
type FactoryConfig struct {
	Provider string // "remote" or "static"
	URL      string // inference service base URL for the remote provider
	Timeout  time.Duration
}

// NewProvider returns a provider-agnostic model client.
func NewProvider(cfg FactoryConfig) Provider {
	switch cfg.Provider {
	case "static":
		return NewStatic()
	default:
		return newRemote(cfg)
	}
}
