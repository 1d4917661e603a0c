package evidence

import (
	"context"
	"sort"
	"strings"

	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
)

const (
	defaultMaxItems = 5
	minOverlap      = 2
)

// KeywordProvider scores corpus entries by case-insensitive token overlap
// with the claim. Entries sharing at least minOverlap meaningful tokens are
// returned best first, capped at maxItems. Plain string matching; there is
// no ranking model behind it.
type KeywordProvider struct {
	corpus   []corpusEntry
	maxItems int
}

type corpusEntry struct {
	source string
	quote  string
	tokens map[string]bool
}

func NewKeywordProvider(maxItems int) *KeywordProvider {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}

	entries := make([]corpusEntry, 0, len(keywordCorpus))
	for _, e := range keywordCorpus {
		entries = append(entries, corpusEntry{
			source: e.Source,
			quote:  e.Quote,
			tokens: tokenSet(e.Quote),
		})
	}

	return &KeywordProvider{corpus: entries, maxItems: maxItems}
}

func (p *KeywordProvider) Mode() string { return ModeKeyword }

func (p *KeywordProvider) Gather(ctx context.Context, claim string) ([]model.Evidence, error) {
	claimTokens := tokenSet(claim)
	if len(claimTokens) == 0 {
		return nil, nil
	}

	type scored struct {
		entry corpusEntry
		score int
	}

	var hits []scored
	for _, e := range p.corpus {
		overlap := 0
		for tok := range claimTokens {
			if e.tokens[tok] {
				overlap++
			}
		}
		if overlap >= minOverlap {
			hits = append(hits, scored{entry: e, score: overlap})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > p.maxItems {
		hits = hits[:p.maxItems]
	}

	items := make([]model.Evidence, 0, len(hits))
	for _, h := range hits {
		items = append(items, model.Evidence{
			Source: h.entry.source,
			Quote:  h.entry.quote,
		})
	}
	return items, nil
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "from": true,
	"and": true, "or": true, "that": true, "this": true, "it": true,
	"by": true, "for": true, "with": true, "as": true, "has": true,
	"have": true, "had": true, "not": true, "no": true, "only": true,
}

func tokenSet(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		tok := strings.Trim(f, `.,;:!?"'()[]`)
		if len(tok) < 2 || stopwords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}
