// Package testutil provides test utilities for the llm package.
// It includes mock implementations for testing text-completion interactions.
package testutil

import (
	"context"
	"sync"

	"github.com/semantiva/chain/llm"
)

// MockService is a thread-safe mock text-completion service for testing.
// It captures the prompts passed to Generate() and returns configured
// responses in sequence.
//
// Usage:
//
//	// Single response mock
//	mock := &MockService{Responses: []string{"explanation text"}}
//
//	// Error response
//	mock := &MockService{Err: errors.New("connection failed")}
type MockService struct {
	mu              sync.Mutex
	capturedPrompts []string
	capturedOpts    []llm.Options
	Responses       []string // Responses to return in sequence
	Err             error    // Error to return (takes precedence over Responses)
	responseIndex   int
}

// Generate implements llm.Service.
// Returns the next response from Responses, or Err if set.
// Captures the prompt and options for verification in tests.
func (m *MockService) Generate(_ context.Context, prompt string, opts llm.Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.capturedPrompts = append(m.capturedPrompts, prompt)
	m.capturedOpts = append(m.capturedOpts, opts)

	if m.Err != nil {
		return "", m.Err
	}

	if m.responseIndex < len(m.Responses) {
		resp := m.Responses[m.responseIndex]
		m.responseIndex++
		return resp, nil
	}

	// Default response if no responses configured
	return "", nil
}

// LastPrompt returns the most recent prompt passed to Generate().
func (m *MockService) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.capturedPrompts) == 0 {
		return ""
	}
	return m.capturedPrompts[len(m.capturedPrompts)-1]
}

// CallCount returns the number of times Generate() was called.
func (m *MockService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.capturedPrompts)
}

// Reset clears the mock's captured state and response cursor.
func (m *MockService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capturedPrompts = nil
	m.capturedOpts = nil
	m.responseIndex = 0
}
