package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/chawalitkim/veritas-lens-project/internal/cache"
	"github.com/chawalitkim/veritas-lens-project/internal/core/evidence"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
	"github.com/chawalitkim/veritas-lens-project/internal/llm"
)

type MockDriver struct {
	QueryExecuted string
	QueryParams   map[string]interface{}
	Queries       []string
	MockResult    neo4j.EagerResult
	ResultQueue   []neo4j.EagerResult
	Err           error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.QueryExecuted = query
	m.QueryParams = params
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if len(m.ResultQueue) > 0 {
		res := m.ResultQueue[0]
		m.ResultQueue = m.ResultQueue[1:]
		return res, nil
	}
	return m.MockResult, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
	LastPrompt    string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}

type MockGrounded struct {
	Response *llm.GroundedResponse
	Err      error
}

func (m *MockGrounded) GenerateGrounded(ctx context.Context, prompt string) (*llm.GroundedResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

type MockProvider struct {
	Items    []model.Evidence
	Err      error
	ModeName string
}

func (m *MockProvider) Gather(ctx context.Context, claim string) ([]model.Evidence, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}

func (m *MockProvider) Mode() string {
	if m.ModeName == "" {
		return evidence.ModeStatic
	}
	return m.ModeName
}

type MockCache struct {
	Stored   map[string]*model.Result
	GetErr   error
	SetErr   error
	LastKey  string
	SetCalls int
}

func (m *MockCache) Get(ctx context.Context, key string) (*model.Result, error) {
	m.LastKey = key
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if r, ok := m.Stored[key]; ok {
		return r, nil
	}
	return nil, cache.ErrMiss
}

func (m *MockCache) Set(ctx context.Context, key string, result *model.Result) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Stored == nil {
		m.Stored = make(map[string]*model.Result)
	}
	m.Stored[key] = result
	return nil
}
