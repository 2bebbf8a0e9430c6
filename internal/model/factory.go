package model

import (
	"fmt"

	"invotab/internal/config"
	"invotab/internal/port"
)

// ProviderFactory is a function that creates a ModelClient from a provider config.
type ProviderFactory func(cfg *config.ModelProviderConfig) (port.ModelClient, error)

// registry of model provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewClient creates a ModelClient from a provider config using the registered factory.
func NewClient(cfg *config.ModelProviderConfig) (port.ModelClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
