package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is a discrete risk classification derived from a numeric score.
type Tier string

const (
	TierSafe     Tier = "safe"
	TierLow      Tier = "low"
	TierMedium   Tier = "medium"
	TierHigh     Tier = "high"
	TierCritical Tier = "critical"

	// Email tiers read with inverted polarity: a higher score is safer.
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
)

// Indicator represents a single matched rule occurrence contributing to a
// risk score. An input may yield zero, one, or many indicators from the same
// category.
type Indicator struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Weight   int    `json:"weight"`
}

// RiskAssessment is the common result shape produced by every analyzer.
//
// Constructed fresh per analysis call and never mutated afterwards. Indicator
// order is catalog scan order; recommendations are deduplicated by category
// and keep insertion order.
type RiskAssessment struct {
	Score           int         `json:"score"` // always within [0, 100]
	Tier            Tier        `json:"tier"`
	Indicators      []Indicator `json:"indicators"`
	Recommendations []string    `json:"recommendations"`
	Category        string      `json:"category"` // e.g. "malware", "safe", "suspicious"
	AnalyzedAt      time.Time   `json:"analyzed_at"`
}

// URLAssessment is the URL analyzer result.
type URLAssessment struct {
	RiskAssessment
	URL      string `json:"url"`
	Protocol string `json:"protocol"`
}

// MessageAssessment is the phishing message analyzer result.
type MessageAssessment struct {
	RiskAssessment
	Risk bool `json:"risk"` // true when score > 40
}

// DomainChecks holds the DNS-derived reputation signals for an email domain.
type DomainChecks struct {
	ValidFormat  bool `json:"valid_format"`
	HasMX        bool `json:"has_mx"`
	HasSPF       bool `json:"has_spf"`
	HasDMARC     bool `json:"has_dmarc"`
	Disposable   bool `json:"disposable"`
	PublicDomain bool `json:"public_domain"`
}

// Breach is a single entry from the breach-database lookup.
type Breach struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// BreachHistory is the breach enrichment outcome. Simulated is true when the
// breach database was unreachable and a heuristic stand-in was substituted;
// a simulated result must never be presented with the confidence of a real
// lookup.
type BreachHistory struct {
	Breaches  []Breach `json:"breaches"`
	Simulated bool     `json:"simulated"`
}

// PentestReport bundles the secondary sub-assessments computed from the
// username and domain alone.
type PentestReport struct {
	SocialEngineering Tier `json:"social_engineering"`
	DataExposure      bool `json:"data_exposure"`
	PhishingRisk      int  `json:"phishing_risk"` // percentage, [0, 100]
	AccountTakeover   Tier `json:"account_takeover"`
}

// EmailAssessment is the email analyzer result. Scoring is subtractive from
// 100, so the safe/warning/danger tiers track deliverability trust rather
// than threat level.
type EmailAssessment struct {
	RiskAssessment
	Email   string        `json:"email"`
	Checks  DomainChecks  `json:"checks"`
	Breach  BreachHistory `json:"breach"`
	Pentest PentestReport `json:"pentest"`
}

// ScanKind identifies which analyzer produced a history record.
type ScanKind string

const (
	ScanURL     ScanKind = "url"
	ScanMessage ScanKind = "message"
	ScanEmail   ScanKind = "email"
)

// ScanRecord is an application-level wrapper storing a past assessment plus
// the original input, kept as the session's scan history.
type ScanRecord struct {
	ID        uuid.UUID `json:"id"`
	Kind      ScanKind  `json:"kind"`
	Input     string    `json:"input"`
	Score     int       `json:"score"`
	Tier      Tier      `json:"tier"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
