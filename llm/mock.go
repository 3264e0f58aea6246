package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// Mock is a deterministic text-completion stub. It echoes the prompt and the
// resolved options back, so golden tests can assert on exact output without a
// network dependency.
type Mock struct {
	model  string
	logger *slog.Logger
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithMockLogger sets the logger.
func WithMockLogger(logger *slog.Logger) MockOption {
	return func(m *Mock) {
		m.logger = logger
	}
}

// NewMock creates a deterministic mock service.
func NewMock(model string, opts ...MockOption) *Mock {
	if model == "" {
		model = "mock"
	}
	m := &Mock{
		model:  model,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger.Debug("Initialized mock LLM", "model", m.model)
	return m
}

// Generate echoes the prompt and resolved options.
func (m *Mock) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	temperature, maxTokens := opts.withDefaults()
	return fmt.Sprintf(
		"Mock LLM response with options {temperature: %g, max_tokens: %d} to prompt:\n%s",
		temperature, maxTokens, prompt), nil
}
