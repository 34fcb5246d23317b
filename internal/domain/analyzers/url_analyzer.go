// Package analyzers contains the three analyzer facades. Each one prepares
// its input, runs the shared scoring engine over its catalog, and merges in
// domain-specific structural checks before aggregation.
package analyzers

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/guardshell/riskscan/internal/domain"
	"github.com/guardshell/riskscan/internal/domain/rules"
	"github.com/guardshell/riskscan/internal/domain/scoring"
)

// URLAnalyzer scores URLs from catalog heuristics plus structural checks:
// domain-list membership, subdomain depth, and brand lookalikes. It is pure:
// no network, no randomness.
type URLAnalyzer struct {
	engine *scoring.Engine
}

func urlProfile() scoring.Profile {
	return scoring.Profile{
		Name: "url",
		Base: 0,
		Bands: []scoring.Band{
			{Min: 80, Tier: domain.TierHigh},
			{Min: 50, Tier: domain.TierMedium},
			{Min: 30, Tier: domain.TierLow},
			{Min: 0, Tier: domain.TierSafe},
		},
	}
}

// NewURLAnalyzer builds the analyzer, validating the catalog at startup.
func NewURLAnalyzer() (*URLAnalyzer, error) {
	engine, err := scoring.New(rules.URLCatalog(), urlProfile(), rules.URLAdvice())
	if err != nil {
		return nil, err
	}
	return &URLAnalyzer{engine: engine}, nil
}

// Analyze assesses a single URL. Empty or whitespace-only input returns nil:
// nothing to score, not an error.
func (a *URLAnalyzer) Analyze(rawURL string) *domain.URLAssessment {
	text := scoring.Normalize(rawURL)
	if text == "" {
		return nil
	}

	host := extractHost(text)
	protocol := "https"
	if strings.HasPrefix(text, "http://") {
		protocol = "http"
	}

	// Known-safe domains short-circuit the heuristics entirely: a small
	// residual base score, no indicators.
	if inDomainList(host, rules.SafeDomains) {
		score := scoring.Clamp(5)
		return &domain.URLAssessment{
			RiskAssessment: domain.RiskAssessment{
				Score:           score,
				Tier:            a.engine.Classify(score),
				Indicators:      []domain.Indicator{},
				Recommendations: a.engine.Recommend(nil, rules.CatSafeDomain),
				Category:        "safe",
				AnalyzedAt:      time.Now().UTC(),
			},
			URL:      text,
			Protocol: protocol,
		}
	}

	indicators := make([]domain.Indicator, 0, 8)
	malicious := inDomainList(host, rules.MaliciousDomains)

	// Membership checks are the highest-priority signal: a known-malicious
	// domain starts the score at 95 before any heuristic weighs in.
	switch {
	case malicious:
		indicators = append(indicators, domain.Indicator{
			Category: rules.CatMaliciousDomain,
			Label:    "Known malicious domain",
			Weight:   95,
		})
	case inDomainList(host, rules.SuspiciousDomains):
		indicators = append(indicators, domain.Indicator{
			Category: rules.CatSuspiciousDomain,
			Label:    "Known link shortener or redirector",
			Weight:   40,
		})
	}

	indicators = append(indicators, a.engine.Match(text)...)

	if depth := strings.Count(host, "."); depth >= 3 {
		indicators = append(indicators, domain.Indicator{
			Category: rules.CatSubdomainDepth,
			Label:    "Excessive subdomain depth",
			Weight:   10,
		})
	}

	if brand := lookalikeBrand(host); brand != "" {
		indicators = append(indicators, domain.Indicator{
			Category: rules.CatBrandLookalike,
			Label:    "Domain imitates brand: " + brand,
			Weight:   25,
		})
	}

	score := a.engine.Aggregate(a.engine.Base(), indicators)
	tier := a.engine.Classify(score)

	category := "safe"
	switch {
	case malicious:
		category = "malware"
	case score >= 50:
		category = "suspicious"
	}

	return &domain.URLAssessment{
		RiskAssessment: domain.RiskAssessment{
			Score:           score,
			Tier:            tier,
			Indicators:      indicators,
			Recommendations: a.engine.Recommend(indicators),
			Category:        category,
			AnalyzedAt:      time.Now().UTC(),
		},
		URL:      text,
		Protocol: protocol,
	}
}

// lookalikeBrand reports the first well-known brand the host imitates:
// either embedded in a label alongside other text, or within edit distance
// two of a label. Exact brand domains never reach here; the safe list
// short-circuits first.
func lookalikeBrand(host string) string {
	labels := strings.Split(host, ".")
	for _, label := range labels {
		for _, brand := range rules.LookalikeBrands {
			if label == brand {
				continue
			}
			if strings.Contains(label, brand) {
				return brand
			}
			if d := fuzzy.LevenshteinDistance(label, brand); d > 0 && d <= 2 && len(label) >= len(brand)-1 {
				return brand
			}
		}
	}
	return ""
}
