package llm

import (
	"context"
	"testing"

	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewClientOpenAI(t *testing.T) {
	client, grounded, err := NewClient(context.Background(), config.LLMConfig{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
	})

	assert.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
	assert.Nil(t, grounded)
}

func TestNewClientClaude(t *testing.T) {
	client, grounded, err := NewClient(context.Background(), config.LLMConfig{
		Provider: "claude",
		Model:    "claude-3-5-haiku-latest",
		APIKey:   "test-key",
	})

	assert.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, client)
	assert.Nil(t, grounded)
}

func TestNewClientOllama(t *testing.T) {
	// Ollama is served through the OpenAI-compatible client.
	client, grounded, err := NewClient(context.Background(), config.LLMConfig{
		Provider: "ollama",
		Model:    "llama3.1",
		BaseURL:  "http://localhost:11434",
	})

	assert.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
	assert.Nil(t, grounded)
}

func TestNewClientCaseInsensitive(t *testing.T) {
	client, _, err := NewClient(context.Background(), config.LLMConfig{
		Provider: "OpenAI",
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
	})

	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClientUnsupported(t *testing.T) {
	_, _, err := NewClient(context.Background(), config.LLMConfig{
		Provider: "watson",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")
}
