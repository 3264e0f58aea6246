package llm

import (
	"net/http"
	"sync"
)

// SystemPrompt frames every completion request sent through a provider.
const SystemPrompt = "You are an AI workflow assistant."

// Provider defines the interface for network-backed LLM provider adapters.
// Providers own the outbound HTTP shape for their vendor; the client owns
// transport, retry, and error classification.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai", "anthropic").
	Name() string

	// BuildURL constructs the full API endpoint URL.
	// An empty baseURL selects the provider's default endpoint.
	BuildURL(baseURL string) string

	// SetHeaders adds provider-specific headers to the request.
	// apiKey comes from the service configuration; empty means none.
	SetHeaders(req *http.Request, apiKey string)

	// BuildRequestBody creates the JSON request body for the provider.
	BuildRequestBody(model, prompt string, temperature float64, maxTokens int) ([]byte, error)

	// ParseResponse extracts the completion text from provider JSON.
	ParseResponse(body []byte) (string, error)
}

// providerRegistry holds registered providers.
var (
	providerRegistry = make(map[string]Provider)
	providerMu       sync.RWMutex
)

// RegisterProvider adds a provider to the registry.
func RegisterProvider(p Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providerRegistry[p.Name()] = p
}

// GetProvider retrieves a provider by name.
func GetProvider(name string) Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return providerRegistry[name]
}

// ListProviders returns all registered provider names.
func ListProviders() []string {
	providerMu.RLock()
	defer providerMu.RUnlock()

	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	return names
}
