package llm

import (
	"context"
)

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GroundedResponse is a reply produced with the provider's built-in
// web-search tool enabled, plus the source URLs the provider attributed
// the answer to.
type GroundedResponse struct {
	Text      string
	Citations []string
}

// SearchGroundedClient is implemented by providers whose API can delegate
// retrieval to a built-in search tool. The factory returns nil for
// providers that cannot, and callers fall back to plain Generate.
type SearchGroundedClient interface {
	GenerateGrounded(ctx context.Context, prompt string) (*GroundedResponse, error)
}
