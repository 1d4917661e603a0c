// Package judge runs the single external model call that turns a claim and
// its evidence into a structured verdict.
package judge

import (
	"context"
	"fmt"

	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/chawalitkim/veritas-lens-project/internal/core/common"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
	"github.com/chawalitkim/veritas-lens-project/internal/llm"
)

type Judge struct {
	LLM      llm.LLMClient
	Grounded llm.SearchGroundedClient
	Prompts  config.VerificationPrompts
}

func NewJudge(llmClient llm.LLMClient, grounded llm.SearchGroundedClient, prompts config.VerificationPrompts) *Judge {
	return &Judge{
		LLM:      llmClient,
		Grounded: grounded,
		Prompts:  prompts,
	}
}

// Evaluate asks the model to weigh the claim against locally gathered
// evidence. The reply is free text and goes through the fence-stripping
// JSON extraction in common.ParseJSON.
func (j *Judge) Evaluate(ctx context.Context, claim string, items []model.Evidence) (*model.RawVerdict, error) {
	promptTemplate := j.Prompts.Evidence
	if promptTemplate == "" {
		promptTemplate = defaultEvidencePrompt
	}

	prompt := fmt.Sprintf(promptTemplate, claim, evidenceContext(items))

	response, err := j.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verdict: %w", err)
	}

	return parseVerdict(response)
}

// EvaluateGrounded delegates evidence retrieval to the provider's built-in
// web-search tool and returns the grounding citation URLs alongside the
// verdict. Providers without a search tool fall back to an evidence-free
// Evaluate.
func (j *Judge) EvaluateGrounded(ctx context.Context, claim string) (*model.RawVerdict, []string, error) {
	if j.Grounded == nil {
		raw, err := j.Evaluate(ctx, claim, nil)
		return raw, nil, err
	}

	promptTemplate := j.Prompts.Grounded
	if promptTemplate == "" {
		promptTemplate = defaultGroundedPrompt
	}

	prompt := fmt.Sprintf(promptTemplate, claim)

	resp, err := j.Grounded.GenerateGrounded(ctx, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate grounded verdict: %w", err)
	}

	raw, err := parseVerdict(resp.Text)
	if err != nil {
		return nil, nil, err
	}

	return raw, resp.Citations, nil
}

func parseVerdict(response string) (*model.RawVerdict, error) {
	raw, err := common.ParseJSON[model.RawVerdict](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse verdict: %w", err)
	}
	return &raw, nil
}

func evidenceContext(items []model.Evidence) string {
	if len(items) == 0 {
		return "(no evidence gathered; judge from general knowledge and say so in the summary)"
	}

	var s string
	for _, it := range items {
		s += fmt.Sprintf("- Source: %s\n  Quote: %s\n", it.Source, it.Quote)
	}
	return s
}
