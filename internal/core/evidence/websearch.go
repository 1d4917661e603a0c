package evidence

import (
	"context"

	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
)

// WebSearchProvider gathers nothing itself. In this mode the judge runs the
// model with its built-in web-search tool enabled and harvests the grounding
// citations from the reply, so there is no local collection step.
type WebSearchProvider struct{}

func NewWebSearchProvider() *WebSearchProvider {
	return &WebSearchProvider{}
}

func (p *WebSearchProvider) Mode() string { return ModeWebSearch }

func (p *WebSearchProvider) Gather(ctx context.Context, claim string) ([]model.Evidence, error) {
	return nil, nil
}
