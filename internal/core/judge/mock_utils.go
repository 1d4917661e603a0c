package judge

import (
	"context"

	"github.com/chawalitkim/veritas-lens-project/internal/llm"
)

type MockLLMClient struct {
	Response   string
	Err        error
	LastPrompt string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

type MockGroundedClient struct {
	Response   *llm.GroundedResponse
	Err        error
	LastPrompt string
}

func (m *MockGroundedClient) GenerateGrounded(ctx context.Context, prompt string) (*llm.GroundedResponse, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}
