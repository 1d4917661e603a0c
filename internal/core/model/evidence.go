package model

type Credibility string

const (
	CredibilityHigh    Credibility = "high"
	CredibilityMedium  Credibility = "medium"
	CredibilityLow     Credibility = "low"
	CredibilityUnknown Credibility = "unknown"
)

type Stance string

const (
	StanceSupporting    Stance = "supporting"
	StanceContradicting Stance = "contradicting"
)

// Evidence is a single sourced statement for or against a claim.
type Evidence struct {
	Source      string      `json:"source"`
	Quote       string      `json:"quote"`
	Credibility Credibility `json:"credibility"`
}

// DomainStats are the per-source-domain aggregates maintained in the store.
type DomainStats struct {
	Name          string      `json:"name"`
	Credibility   Credibility `json:"credibility"`
	Citations     int64       `json:"citations"`
	Supporting    int64       `json:"supporting"`
	Contradicting int64       `json:"contradicting"`
	LastSeen      string      `json:"last_seen,omitempty"`
}
