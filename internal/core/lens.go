package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chawalitkim/veritas-lens-project/internal/cache"
	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/chawalitkim/veritas-lens-project/internal/core/credibility"
	"github.com/chawalitkim/veritas-lens-project/internal/core/evidence"
	"github.com/chawalitkim/veritas-lens-project/internal/core/judge"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
	"github.com/chawalitkim/veritas-lens-project/internal/core/sanitize"
	"github.com/chawalitkim/veritas-lens-project/internal/driver"
	"github.com/chawalitkim/veritas-lens-project/internal/enrich"
	"github.com/chawalitkim/veritas-lens-project/internal/llm"
	"github.com/chawalitkim/veritas-lens-project/internal/metrics"
)

var (
	ErrEmptyClaim   = errors.New("claim is empty")
	ErrClaimTooLong = errors.New("claim exceeds maximum length")

	// ErrUpstream covers both a failed model call and a reply that could not
	// be turned into a verdict.
	ErrUpstream = errors.New("model verdict unavailable")
)

const defaultMaxClaimChars = 600

// Cacher is the slice of the verdict cache the pipeline needs. Satisfied by
// *cache.VerdictCache.
type Cacher interface {
	Get(ctx context.Context, key string) (*model.Result, error)
	Set(ctx context.Context, key string, result *model.Result) error
}

// Lens wires the verification pipeline together: sanitize the claim, consult
// the cache, gather evidence, run the judge, score source credibility and
// archive the outcome in the graph.
type Lens struct {
	Driver   driver.GraphDriver
	LLM      llm.LLMClient
	Judge    *judge.Judge
	Provider evidence.Provider
	Scorer   *credibility.Scorer
	Metrics  *metrics.Metrics
	Config   *config.Config
	Log      *zap.Logger

	// Optional collaborators. Nil disables the concern.
	Cache    Cacher
	Enricher *enrich.Enricher

	UUIDGenerator func() string
}

func NewLens(d driver.GraphDriver, llmClient llm.LLMClient, groundedClient llm.SearchGroundedClient, provider evidence.Provider, m *metrics.Metrics, cfg *config.Config, log *zap.Logger) *Lens {
	return &Lens{
		Driver:        d,
		LLM:           llmClient,
		Judge:         judge.NewJudge(llmClient, groundedClient, cfg.Prompts),
		Provider:      provider,
		Scorer:        credibility.NewScorer(cfg.Credibility.HighTrust, cfg.Credibility.LowTrust),
		Metrics:       m,
		Config:        cfg,
		Log:           log,
		UUIDGenerator: func() string { return uuid.New().String() },
	}
}

func (l *Lens) BuildIndices(ctx context.Context) error {
	return l.Driver.BuildIndices(ctx)
}

// Ping runs a trivial query so health checks can tell a dead store from a
// slow one.
func (l *Lens) Ping(ctx context.Context) error {
	_, err := l.Driver.ExecuteQuery(ctx, "RETURN 1 AS ok;", nil)
	return err
}

// Verify runs the full pipeline for one claim and returns the finished
// verdict. Cache hits skip the model entirely; archive and cache write
// failures are logged but never fail the request.
func (l *Lens) Verify(ctx context.Context, claimText string) (*model.Result, error) {
	claim := sanitize.Clean(claimText)
	if claim == "" {
		return nil, ErrEmptyClaim
	}

	maxChars := l.Config.Server.MaxClaimChars
	if maxChars <= 0 {
		maxChars = defaultMaxClaimChars
	}
	if utf8.RuneCountInString(claim) > maxChars {
		return nil, ErrClaimTooLong
	}

	mode := l.Provider.Mode()
	key := cache.Key(sanitize.Normalize(claim), l.Config.LLM.Provider, l.Config.LLM.Model, mode)

	if l.Cache != nil {
		cached, err := l.Cache.Get(ctx, key)
		switch {
		case err == nil:
			l.Metrics.CacheEventsTotal.WithLabelValues("hit").Inc()
			out := *cached
			out.Cached = true
			return &out, nil
		case errors.Is(err, cache.ErrMiss):
			l.Metrics.CacheEventsTotal.WithLabelValues("miss").Inc()
		default:
			l.Metrics.CacheEventsTotal.WithLabelValues("error").Inc()
			l.Log.Warn("cache read failed", zap.Error(err))
		}
	}

	items, err := l.Provider.Gather(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("failed to gather evidence: %w", err)
	}

	start := time.Now()
	var raw *model.RawVerdict
	var citations []string
	if mode == evidence.ModeWebSearch {
		raw, citations, err = l.Judge.EvaluateGrounded(ctx, claim)
	} else {
		raw, err = l.Judge.Evaluate(ctx, claim, items)
	}
	l.Metrics.ModelRequestDuration.WithLabelValues(l.Config.LLM.Provider).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	result, err := l.buildResult(claim, raw, citations, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if l.Enricher != nil {
		result.SupportingEvidence = l.Enricher.Titles(ctx, result.SupportingEvidence)
		result.ContradictingEvidence = l.Enricher.Titles(ctx, result.ContradictingEvidence)
	}

	l.Metrics.VerificationsTotal.WithLabelValues(string(result.Verdict), mode).Inc()
	for _, it := range result.SupportingEvidence {
		l.Metrics.EvidenceItemsTotal.WithLabelValues(string(it.Credibility)).Inc()
	}
	for _, it := range result.ContradictingEvidence {
		l.Metrics.EvidenceItemsTotal.WithLabelValues(string(it.Credibility)).Inc()
	}

	if err := l.archive(ctx, result); err != nil {
		l.Log.Warn("failed to archive verification", zap.String("id", result.ID), zap.Error(err))
	}

	if l.Cache != nil {
		if err := l.Cache.Set(ctx, key, result); err != nil {
			l.Log.Warn("cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

// buildResult normalizes the untrusted wire verdict into the public shape:
// canonical label, clamped confidence, scored evidence, merged citations.
func (l *Lens) buildResult(claim string, raw *model.RawVerdict, citations []string, mode string) (*model.Result, error) {
	label, err := model.ParseVerdictLabel(raw.Verdict)
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		return nil, fmt.Errorf("model returned an empty summary")
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	supporting := toEvidence(raw.SupportingEvidence)
	contradicting := toEvidence(raw.ContradictingEvidence)
	supporting = mergeCitations(supporting, contradicting, citations)

	supporting = l.Scorer.Annotate(supporting)
	contradicting = l.Scorer.Annotate(contradicting)

	return &model.Result{
		ID:                    l.UUIDGenerator(),
		Claim:                 claim,
		Verdict:               label,
		Confidence:            confidence,
		Summary:               summary,
		SupportingEvidence:    supporting,
		ContradictingEvidence: contradicting,
		Model:                 l.Config.LLM.Model,
		EvidenceMode:          mode,
		CheckedAt:             time.Now().UTC(),
	}, nil
}

func toEvidence(raw []model.RawEvidence) []model.Evidence {
	var items []model.Evidence
	for _, r := range raw {
		source := strings.TrimSpace(r.Source)
		if source == "" {
			continue
		}
		items = append(items, model.Evidence{
			Source: source,
			Quote:  strings.TrimSpace(r.Quote),
		})
	}
	return items
}

// mergeCitations appends grounding citations the model's own evidence lists
// did not mention, as quoteless supporting items.
func mergeCitations(supporting, contradicting []model.Evidence, citations []string) []model.Evidence {
	if len(citations) == 0 {
		return supporting
	}

	seen := make(map[string]bool)
	for _, it := range supporting {
		seen[it.Source] = true
	}
	for _, it := range contradicting {
		seen[it.Source] = true
	}

	for _, c := range citations {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		supporting = append(supporting, model.Evidence{Source: c})
		seen[c] = true
	}
	return supporting
}
