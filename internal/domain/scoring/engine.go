// Package scoring implements the generic rule-based scorer shared by all
// analyzers: indicator matching against a catalog, weighted aggregation with
// a [0,100] clamp, threshold classification, and recommendation lookup.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guardshell/riskscan/internal/domain"
	"github.com/guardshell/riskscan/internal/domain/rules"
)

// Band maps the inclusive lower bound of a score range to a tier.
type Band struct {
	Min  int
	Tier domain.Tier
}

// Profile carries everything domain-specific about a scorer: the base score
// it aggregates from and the threshold table it classifies with. Additive
// domains start at 0; the subtractive email domain starts at 100.
type Profile struct {
	Name  string
	Base  int
	Bands []Band
}

// Engine composes one catalog with one profile and one recommendation map.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	catalog *rules.Catalog
	profile Profile
	advice  map[string]string
}

// New validates the catalog against the recommendation map and the profile's
// threshold table. Validation failures are programmer errors and abort
// startup.
func New(catalog *rules.Catalog, profile Profile, advice map[string]string) (*Engine, error) {
	if err := catalog.Validate(advice); err != nil {
		return nil, err
	}
	if len(profile.Bands) == 0 {
		return nil, fmt.Errorf("profile %s has no threshold bands", profile.Name)
	}
	if !sort.SliceIsSorted(profile.Bands, func(i, j int) bool {
		return profile.Bands[i].Min > profile.Bands[j].Min
	}) {
		return nil, fmt.Errorf("profile %s: bands must be in descending order", profile.Name)
	}
	return &Engine{catalog: catalog, profile: profile, advice: advice}, nil
}

// Normalize lowercases and trims an input string. Matching is always done on
// normalized text so assessments are case-insensitive and repeatable.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Match scans normalized text against the catalog and returns indicators in
// catalog scan order. Pure function: no side effects, no I/O.
//
// Keyword rules contribute once per matched term (cumulative, uncapped)
// unless the rule is categorical; regex rules contribute at most once.
func (e *Engine) Match(text string) []domain.Indicator {
	indicators := make([]domain.Indicator, 0)
	for _, rule := range e.catalog.Rules {
		if rule.Pattern != nil {
			if rule.Pattern.MatchString(text) {
				indicators = append(indicators, domain.Indicator{
					Category: rule.Category,
					Label:    rule.Label,
					Weight:   rule.Weight,
				})
			}
			continue
		}

		matched := make([]string, 0, len(rule.Terms))
		for _, term := range rule.Terms {
			if strings.Contains(text, term) {
				matched = append(matched, term)
			}
		}
		if len(matched) == 0 {
			continue
		}

		weight := rule.Weight * len(matched)
		label := fmt.Sprintf("%s: %s", rule.Label, strings.Join(matched, ", "))
		if rule.Categorical {
			// Membership-style rules contribute once and keep their bare label.
			weight = rule.Weight
			label = rule.Label
		}
		indicators = append(indicators, domain.Indicator{
			Category: rule.Category,
			Label:    label,
			Weight:   weight,
		})
	}
	return indicators
}

// Aggregate sums indicator weights and enrichment deltas on top of a base
// score and clamps the result to [0, 100]. Raw weighted sum; no
// normalization by indicator count.
func (e *Engine) Aggregate(base int, indicators []domain.Indicator, deltas ...int) int {
	score := base
	for _, ind := range indicators {
		score += ind.Weight
	}
	for _, d := range deltas {
		score += d
	}
	return Clamp(score)
}

// Clamp bounds a score to [0, 100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Classify maps a score to a tier: the first band whose lower bound the
// score meets wins. Deterministic in score alone.
func (e *Engine) Classify(score int) domain.Tier {
	for _, band := range e.profile.Bands {
		if score >= band.Min {
			return band.Tier
		}
	}
	return e.profile.Bands[len(e.profile.Bands)-1].Tier
}

// Base returns the profile's starting score.
func (e *Engine) Base() int {
	return e.profile.Base
}

// Recommend maps matched categories to advice strings, deduplicated by
// category in indicator order. Multiple indicators of one category yield one
// recommendation.
func (e *Engine) Recommend(indicators []domain.Indicator, extraCategories ...string) []string {
	out := make([]string, 0, len(indicators))
	seen := make(map[string]bool, len(indicators))
	emit := func(category string) {
		if seen[category] {
			return
		}
		seen[category] = true
		if advice, ok := e.advice[category]; ok {
			out = append(out, advice)
		}
	}
	for _, ind := range indicators {
		emit(ind.Category)
	}
	for _, cat := range extraCategories {
		emit(cat)
	}
	return out
}

// Advice returns the advice string for one category, for facades that emit
// check-specific recommendations outside the indicator path.
func (e *Engine) Advice(category string) string {
	return e.advice[category]
}
