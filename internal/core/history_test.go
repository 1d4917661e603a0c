package core

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"

	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
	"github.com/chawalitkim/veritas-lens-project/internal/driver"
)

func verificationRecord(id string) *neo4j.Record {
	return &neo4j.Record{
		Keys: []string{"id", "claim", "verdict", "confidence", "summary", "model", "evidence_mode", "created_at"},
		Values: []interface{}{
			id,
			"The Great Wall of China is visible from space",
			"false",
			0.95,
			"Astronauts disagree.",
			"gpt-4o-mini",
			"static",
			"2026-08-20T10:30:00Z",
		},
	}
}

func TestGetVerification(t *testing.T) {
	mockDriver := &MockDriver{
		ResultQueue: []neo4j.EagerResult{
			{Records: []*neo4j.Record{verificationRecord("ver-1")}},
			{Records: []*neo4j.Record{
				{
					Keys:   []string{"url", "quote", "credibility", "stance"},
					Values: []interface{}{"https://www.nasa.gov/wall", "not visible", "high", "contradicting"},
				},
				{
					Keys:   []string{"url", "quote", "credibility", "stance"},
					Values: []interface{}{"https://example.org/blog", "clearly visible", "unknown", "supporting"},
				},
			}},
		},
	}

	l := testLens(mockDriver, &MockLLM{}, nil, &MockProvider{}, testConfig())

	result, err := l.GetVerification(context.Background(), "ver-1")

	assert.NoError(t, err)
	assert.Equal(t, "ver-1", result.ID)
	assert.Equal(t, model.VerdictFalse, result.Verdict)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "2026-08-20T10:30:00Z", result.CheckedAt.Format("2006-01-02T15:04:05Z07:00"))

	assert.Len(t, result.ContradictingEvidence, 1)
	assert.Equal(t, "https://www.nasa.gov/wall", result.ContradictingEvidence[0].Source)
	assert.Equal(t, model.CredibilityHigh, result.ContradictingEvidence[0].Credibility)
	assert.Len(t, result.SupportingEvidence, 1)
}

func TestGetVerificationNotFound(t *testing.T) {
	l := testLens(&MockDriver{}, &MockLLM{}, nil, &MockProvider{}, testConfig())

	_, err := l.GetVerification(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, driver.ErrNotFound)
}

func TestRecentVerifications(t *testing.T) {
	mockDriver := &MockDriver{
		MockResult: neo4j.EagerResult{
			Records: []*neo4j.Record{verificationRecord("ver-2"), verificationRecord("ver-1")},
		},
	}

	l := testLens(mockDriver, &MockLLM{}, nil, &MockProvider{}, testConfig())

	results, err := l.RecentVerifications(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "ver-2", results[0].ID)
	assert.Equal(t, 2, mockDriver.QueryParams["limit"])
}

func TestRecentVerificationsLimitClamped(t *testing.T) {
	mockDriver := &MockDriver{}
	l := testLens(mockDriver, &MockLLM{}, nil, &MockProvider{}, testConfig())

	_, err := l.RecentVerifications(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 10, mockDriver.QueryParams["limit"])

	_, err = l.RecentVerifications(context.Background(), 999)
	assert.NoError(t, err)
	assert.Equal(t, 50, mockDriver.QueryParams["limit"])
}

func TestDomainStats(t *testing.T) {
	mockDriver := &MockDriver{
		MockResult: neo4j.EagerResult{
			Records: []*neo4j.Record{
				{
					Keys:   []string{"name", "credibility", "citations", "supporting", "contradicting", "last_seen"},
					Values: []interface{}{"nature.com", "high", int64(12), int64(9), int64(3), "2026-08-19T08:00:00Z"},
				},
			},
		},
	}

	l := testLens(mockDriver, &MockLLM{}, nil, &MockProvider{}, testConfig())

	stats, err := l.DomainStats(context.Background(), "www.Nature.com")

	assert.NoError(t, err)
	assert.Equal(t, "nature.com", stats.Name)
	assert.Equal(t, model.CredibilityHigh, stats.Credibility)
	assert.Equal(t, int64(12), stats.Citations)
	assert.Equal(t, int64(9), stats.Supporting)
	assert.Equal(t, int64(3), stats.Contradicting)

	// The www prefix is stripped before the lookup.
	assert.Equal(t, "nature.com", mockDriver.QueryParams["name"])
}

func TestDomainStatsNotFound(t *testing.T) {
	l := testLens(&MockDriver{}, &MockLLM{}, nil, &MockProvider{}, testConfig())

	_, err := l.DomainStats(context.Background(), "unknown.example")

	assert.ErrorIs(t, err, driver.ErrNotFound)
}

func TestRefreshDomainStats(t *testing.T) {
	mockDriver := &MockDriver{
		MockResult: neo4j.EagerResult{
			Records: []*neo4j.Record{
				{Keys: []string{"domains"}, Values: []interface{}{int64(3)}},
			},
		},
	}

	l := testLens(mockDriver, &MockLLM{}, nil, &MockProvider{}, testConfig())

	touched, err := l.RefreshDomainStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), touched)
	assert.Equal(t, driver.RefreshDomainStatsQuery, mockDriver.QueryExecuted)
}

func TestPing(t *testing.T) {
	mockDriver := &MockDriver{}
	l := testLens(mockDriver, &MockLLM{}, nil, &MockProvider{}, testConfig())

	assert.NoError(t, l.Ping(context.Background()))
	assert.Contains(t, mockDriver.QueryExecuted, "RETURN 1")
}
