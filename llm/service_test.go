package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semantiva/chain/config"
	"github.com/semantiva/chain/llm"
	_ "github.com/semantiva/chain/llm/providers" // Register providers
)

func TestNewService_MockProvider(t *testing.T) {
	service, err := llm.NewService(config.LLMConfig{Provider: "mock"})
	require.NoError(t, err)

	content, err := service.Generate(context.Background(), "hello", llm.Options{})
	require.NoError(t, err)
	assert.Contains(t, content, "hello")
}

func TestNewService_NetworkProviders(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic", "ollama", "OpenAI"} {
		t.Run(provider, func(t *testing.T) {
			_, err := llm.NewService(config.LLMConfig{Provider: provider, Model: "m"})
			assert.NoError(t, err)
		})
	}
}

func TestNewService_UnknownProviderFailsConstruction(t *testing.T) {
	_, err := llm.NewService(config.LLMConfig{Provider: "deepseek"})
	require.Error(t, err)
	assert.True(t, llm.IsConfiguration(err))
	assert.Contains(t, err.Error(), "unsupported LLM provider: 'deepseek'")
	assert.Contains(t, err.Error(), "mock")
}

func TestMock_DeterministicEcho(t *testing.T) {
	mock := llm.NewMock("mock")

	first, err := mock.Generate(context.Background(), "prompt text", llm.Options{})
	require.NoError(t, err)
	second, err := mock.Generate(context.Background(), "prompt text", llm.Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "prompt text")
}

func TestMock_OptionDefaultsEchoed(t *testing.T) {
	mock := llm.NewMock("")

	content, err := mock.Generate(context.Background(), "p", llm.Options{})
	require.NoError(t, err)
	assert.Contains(t, content, "{temperature: 0.7, max_tokens: 1000}")
}

func TestMock_ExplicitOptionsEchoed(t *testing.T) {
	mock := llm.NewMock("mock")
	temperature := 0.2

	content, err := mock.Generate(context.Background(), "p", llm.Options{
		Temperature: &temperature,
		MaxTokens:   256,
	})
	require.NoError(t, err)
	assert.Contains(t, content, "{temperature: 0.2, max_tokens: 256}")
}

func TestMock_RespectsContextCancellation(t *testing.T) {
	mock := llm.NewMock("mock")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, "p", llm.Options{})
	assert.Error(t, err)
}
