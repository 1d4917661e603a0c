// Package credibility labels evidence sources by their domain.
package credibility

import (
	"net/url"
	"strings"

	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
)

// Entries starting with "." are suffix-matched (".gov" covers any
// government host); everything else matches the exact host or a
// subdomain of it.
var defaultHighTrust = []string{
	".gov",
	".edu",
	".mil",
	".ac.uk",
	".gov.uk",
	".go.jp",
	".int",
	"reuters.com",
	"apnews.com",
	"bbc.com",
	"bbc.co.uk",
	"npr.org",
	"nature.com",
	"science.org",
	"nejm.org",
	"thelancet.com",
	"britannica.com",
	"oecd.org",
	"worldbank.org",
}

// Satire and documented-fabrication outlets. Satire sites are listed
// because quoted headlines from them keep surfacing as "evidence".
var defaultLowTrust = []string{
	"theonion.com",
	"babylonbee.com",
	"worldnewsdailyreport.com",
	"beforeitsnews.com",
	"naturalnews.com",
	"infowars.com",
}

type Scorer struct {
	high []string
	low  []string
}

// NewScorer builds a scorer from the built-in registries plus any
// config-supplied additions.
func NewScorer(extraHigh, extraLow []string) *Scorer {
	return &Scorer{
		high: append(append([]string{}, defaultHighTrust...), extraHigh...),
		low:  append(append([]string{}, defaultLowTrust...), extraLow...),
	}
}

// Score labels a single source URL. Unparsable URLs come back unknown;
// hosts in neither registry are medium.
func (s *Scorer) Score(rawURL string) model.Credibility {
	host := Domain(rawURL)
	if host == "" {
		return model.CredibilityUnknown
	}
	if matches(host, s.high) {
		return model.CredibilityHigh
	}
	if matches(host, s.low) {
		return model.CredibilityLow
	}
	return model.CredibilityMedium
}

// Annotate scores every item in place and returns the slice.
func (s *Scorer) Annotate(items []model.Evidence) []model.Evidence {
	for i := range items {
		items[i].Credibility = s.Score(items[i].Source)
	}
	return items
}

// Domain extracts the host of a URL, lowercased, with any "www." prefix
// stripped. Model output sometimes omits the scheme, so bare hosts are
// accepted too.
func Domain(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		u, err = url.Parse("https://" + trimmed)
		if err != nil || u.Host == "" {
			return ""
		}
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

func matches(host string, registry []string) bool {
	for _, entry := range registry {
		if strings.HasPrefix(entry, ".") {
			if strings.HasSuffix(host, entry) {
				return true
			}
			continue
		}
		if host == entry || strings.HasSuffix(host, "."+entry) {
			return true
		}
	}
	return false
}
