package model

import (
	"fmt"
	"strings"
	"time"
)

type VerdictLabel string

const (
	VerdictTrue          VerdictLabel = "true"
	VerdictFalse         VerdictLabel = "false"
	VerdictPartiallyTrue VerdictLabel = "partially_true"
	VerdictUnverifiable  VerdictLabel = "unverifiable"
)

// ParseVerdictLabel normalizes the free-form label a model returns into the
// closed verdict set. Case, hyphen and space variants are accepted
// ("Partially True" and "partially-true" both map to partially_true).
func ParseVerdictLabel(s string) (VerdictLabel, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")

	switch norm {
	case "true", "verified", "accurate":
		return VerdictTrue, nil
	case "false", "incorrect", "inaccurate":
		return VerdictFalse, nil
	case "partially_true", "partly_true", "partial", "mixed", "mixture", "half_true":
		return VerdictPartiallyTrue, nil
	case "unverifiable", "unverified", "unknown", "insufficient_evidence", "inconclusive":
		return VerdictUnverifiable, nil
	}

	return "", fmt.Errorf("unrecognized verdict label: %q", s)
}

// Result is the full outcome of a verification.
type Result struct {
	ID                    string       `json:"id"`
	Claim                 string       `json:"claim"`
	Verdict               VerdictLabel `json:"verdict"`
	Confidence            float64      `json:"confidence"`
	Summary               string       `json:"summary"`
	SupportingEvidence    []Evidence   `json:"supporting_evidence"`
	ContradictingEvidence []Evidence   `json:"contradicting_evidence"`
	Model                 string       `json:"model"`
	EvidenceMode          string       `json:"evidence_mode"`
	Cached                bool         `json:"cached"`
	CheckedAt             time.Time    `json:"checked_at"`
}

// RawVerdict is the shape the model is asked to reply with. Fields arrive
// untrusted: the label may be any casing, the confidence out of range, the
// evidence lists absent.
type RawVerdict struct {
	Verdict               string        `json:"verdict"`
	Confidence            float64       `json:"confidence"`
	Summary               string        `json:"summary"`
	SupportingEvidence    []RawEvidence `json:"supporting_evidence"`
	ContradictingEvidence []RawEvidence `json:"contradicting_evidence"`
}

type RawEvidence struct {
	Source string `json:"source"`
	Quote  string `json:"quote"`
}
