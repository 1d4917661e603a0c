// Package enrich backfills quotes for bare citations. Search-grounded
// verdicts often cite URLs without any quoted text; the page title is a
// serviceable stand-in for display.
package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
)

const (
	defaultMaxFetches = 5
	defaultTimeout    = 4 * time.Second
)

type Enricher struct {
	client *http.Client
	max    int
	log    *zap.Logger
}

func New(cfg config.EnrichConfig, log *zap.Logger) *Enricher {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	max := cfg.MaxFetches
	if max <= 0 {
		max = defaultMaxFetches
	}

	return &Enricher{
		client: &http.Client{Timeout: timeout},
		max:    max,
		log:    log,
	}
}

// Titles fills in the quote of items that have none with the cited page's
// <title>. At most max pages are fetched per call; any failure leaves the
// item untouched.
func (e *Enricher) Titles(ctx context.Context, items []model.Evidence) []model.Evidence {
	fetched := 0
	for i := range items {
		if items[i].Quote != "" || fetched >= e.max {
			continue
		}
		fetched++

		title, err := e.fetchTitle(ctx, items[i].Source)
		if err != nil {
			e.log.Debug("title fetch failed",
				zap.String("url", items[i].Source), zap.Error(err))
			continue
		}
		if title != "" {
			items[i].Quote = title
		}
	}
	return items
}

func (e *Enricher) fetchTitle(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "veritas-lens/1.0")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
