// Package evidence supplies the selectable evidence-gathering strategies.
//
// Three modes coexist: a static lookup table, keyword matching over a mock
// corpus, and websearch, which gathers nothing locally and instead lets the
// model's built-in search tool retrieve evidence during the judge call.
package evidence

import (
	"context"
	"fmt"
	"strings"

	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
)

const (
	ModeStatic    = "static"
	ModeKeyword   = "keyword"
	ModeWebSearch = "websearch"
)

type Provider interface {
	// Gather returns locally collected evidence for the claim. An empty
	// result is not an error; it means nothing matched.
	Gather(ctx context.Context, claim string) ([]model.Evidence, error)
	Mode() string
}

// NewProvider selects the gathering strategy from config. Websearch is the
// default when no mode is set.
func NewProvider(cfg config.EvidenceConfig) (Provider, error) {
	switch strings.ToLower(cfg.Mode) {
	case ModeStatic:
		return NewStaticProvider(), nil

	case ModeKeyword:
		return NewKeywordProvider(cfg.MaxItems), nil

	case ModeWebSearch, "":
		return NewWebSearchProvider(), nil

	default:
		return nil, fmt.Errorf("unsupported evidence mode: %s", cfg.Mode)
	}
}
