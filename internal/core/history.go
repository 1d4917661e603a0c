package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chawalitkim/veritas-lens-project/internal/core/credibility"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
	"github.com/chawalitkim/veritas-lens-project/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const defaultRecentLimit = 10
const maxRecentLimit = 50

// archive writes the verification and its evidence into the graph. Evidence
// rows are best effort: one bad URL should not lose the verification node.
func (l *Lens) archive(ctx context.Context, result *model.Result) error {
	params := map[string]interface{}{
		"id":            result.ID,
		"claim":         result.Claim,
		"verdict":       string(result.Verdict),
		"confidence":    result.Confidence,
		"summary":       result.Summary,
		"model":         result.Model,
		"evidence_mode": result.EvidenceMode,
		"created_at":    result.CheckedAt.UTC().Format(time.RFC3339),
	}

	if _, err := l.Driver.ExecuteQuery(ctx, driver.SaveVerificationQuery, params); err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}

	for _, it := range result.SupportingEvidence {
		if err := l.saveEvidence(ctx, result.ID, it, model.StanceSupporting); err != nil {
			l.Log.Warn("failed to save evidence", zap.String("url", it.Source), zap.Error(err))
		}
	}
	for _, it := range result.ContradictingEvidence {
		if err := l.saveEvidence(ctx, result.ID, it, model.StanceContradicting); err != nil {
			l.Log.Warn("failed to save evidence", zap.String("url", it.Source), zap.Error(err))
		}
	}

	return nil
}

func (l *Lens) saveEvidence(ctx context.Context, verificationID string, item model.Evidence, stance model.Stance) error {
	domain := credibility.Domain(item.Source)
	if domain == "" {
		domain = "unknown"
	}

	params := map[string]interface{}{
		"verification_id": verificationID,
		"domain":          domain,
		"url":             item.Source,
		"quote":           item.Quote,
		"credibility":     string(item.Credibility),
		"stance":          string(stance),
	}

	_, err := l.Driver.ExecuteQuery(ctx, driver.SaveEvidenceQuery, params)
	return err
}

// GetVerification loads one archived verification with its evidence.
// Returns driver.ErrNotFound for unknown ids.
func (l *Lens) GetVerification(ctx context.Context, id string) (*model.Result, error) {
	res, err := l.Driver.ExecuteQuery(ctx, driver.GetVerificationQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, driver.ErrNotFound
	}

	result := recordToResult(res.Records[0])

	evRes, err := l.Driver.ExecuteQuery(ctx, driver.GetVerificationEvidenceQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	for _, rec := range evRes.Records {
		item := model.Evidence{
			Source:      stringValue(rec, "url"),
			Quote:       stringValue(rec, "quote"),
			Credibility: model.Credibility(stringValue(rec, "credibility")),
		}
		if model.Stance(stringValue(rec, "stance")) == model.StanceContradicting {
			result.ContradictingEvidence = append(result.ContradictingEvidence, item)
		} else {
			result.SupportingEvidence = append(result.SupportingEvidence, item)
		}
	}

	return result, nil
}

// RecentVerifications returns the newest archived verdicts without their
// evidence lists. The limit is clamped to a sane window.
func (l *Lens) RecentVerifications(ctx context.Context, limit int) ([]model.Result, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	res, err := l.Driver.ExecuteQuery(ctx, driver.GetRecentVerificationsQuery, map[string]interface{}{"limit": limit})
	if err != nil {
		return nil, err
	}

	results := make([]model.Result, 0, len(res.Records))
	for _, rec := range res.Records {
		results = append(results, *recordToResult(rec))
	}
	return results, nil
}

// DomainStats returns the aggregated citation counters for one source domain.
func (l *Lens) DomainStats(ctx context.Context, name string) (*model.DomainStats, error) {
	host := strings.ToLower(strings.TrimSpace(name))
	host = strings.TrimPrefix(host, "www.")

	res, err := l.Driver.ExecuteQuery(ctx, driver.GetDomainStatsQuery, map[string]interface{}{"name": host})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, driver.ErrNotFound
	}

	rec := res.Records[0]
	return &model.DomainStats{
		Name:          stringValue(rec, "name"),
		Credibility:   model.Credibility(stringValue(rec, "credibility")),
		Citations:     intValue(rec, "citations"),
		Supporting:    intValue(rec, "supporting"),
		Contradicting: intValue(rec, "contradicting"),
		LastSeen:      stringValue(rec, "last_seen"),
	}, nil
}

// RefreshDomainStats recomputes the per-domain counters from the CITES edges
// and reports how many domains were touched.
func (l *Lens) RefreshDomainStats(ctx context.Context) (int64, error) {
	res, err := l.Driver.ExecuteQuery(ctx, driver.RefreshDomainStatsQuery, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh domain stats: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return intValue(res.Records[0], "domains"), nil
}

func recordToResult(rec *neo4j.Record) *model.Result {
	checkedAt, _ := time.Parse(time.RFC3339, stringValue(rec, "created_at"))
	return &model.Result{
		ID:           stringValue(rec, "id"),
		Claim:        stringValue(rec, "claim"),
		Verdict:      model.VerdictLabel(stringValue(rec, "verdict")),
		Confidence:   floatValue(rec, "confidence"),
		Summary:      stringValue(rec, "summary"),
		Model:        stringValue(rec, "model"),
		EvidenceMode: stringValue(rec, "evidence_mode"),
		CheckedAt:    checkedAt,
	}
}

func stringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func floatValue(rec *neo4j.Record, key string) float64 {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

func intValue(rec *neo4j.Record, key string) int64 {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}
