package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return textFromResponse(resp)
}

// GenerateGrounded runs the model with Google Search retrieval enabled, so
// the API fetches its own evidence. Citation source URIs are collected from
// the candidate's citation metadata, deduplicated, in answer order.
// Structured-output mode cannot be combined with the search tool, so the
// reply text is free-form and parsed like any other reply.
func (c *GeminiClient) GenerateGrounded(ctx context.Context, prompt string) (*GroundedResponse, error) {
	model := c.client.GenerativeModel(c.model)
	model.Tools = []*genai.Tool{
		{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	text, err := textFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var citations []string
	seen := make(map[string]bool)
	meta := resp.Candidates[0].CitationMetadata
	if meta != nil {
		for _, src := range meta.CitationSources {
			if src.URI == nil || *src.URI == "" || seen[*src.URI] {
				continue
			}
			seen[*src.URI] = true
			citations = append(citations, *src.URI)
		}
	}

	return &GroundedResponse{Text: text, Citations: citations}, nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		var out string
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				out += string(txt)
			}
		}
		if out != "" {
			return out, nil
		}
	}

	return "", fmt.Errorf("no response candidates or content")
}
