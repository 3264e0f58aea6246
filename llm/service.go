// Package llm provides the text-completion service abstraction: a common
// Generate contract, a provider registry for network-backed vendors, an HTTP
// client with retry and timeout handling, and a deterministic mock.
package llm

import (
	"context"
	"sort"
	"strings"

	"github.com/semantiva/chain/config"
)

// Option defaults applied when a Generate call leaves them unset.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// Options are per-call generation options.
type Options struct {
	// Temperature controls randomness. nil uses DefaultTemperature.
	Temperature *float64

	// MaxTokens limits response length. 0 uses DefaultMaxTokens.
	MaxTokens int
}

// withDefaults resolves unset options to their defaults.
func (o Options) withDefaults() (temperature float64, maxTokens int) {
	temperature = DefaultTemperature
	if o.Temperature != nil {
		temperature = *o.Temperature
	}
	maxTokens = o.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return temperature, maxTokens
}

// Service generates a completion for a prompt.
type Service interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// MockProviderName selects the deterministic in-process stub.
const MockProviderName = "mock"

// NewService constructs a text-completion service from configuration.
// "mock" selects the deterministic stub; any other name must match a
// registered network provider or construction fails with a
// ConfigurationError.
func NewService(cfg config.LLMConfig, opts ...ClientOption) (Service, error) {
	name := strings.ToLower(cfg.Provider)

	if name == MockProviderName {
		return NewMock(cfg.Model), nil
	}

	provider := GetProvider(name)
	if provider == nil {
		known := append(ListProviders(), MockProviderName)
		sort.Strings(known)
		return nil, NewConfigurationError(
			"unsupported LLM provider: '%s'. Choose one of: %s",
			cfg.Provider, strings.Join(known, ", "))
	}

	return NewClient(provider, cfg, opts...), nil
}
