package rules

import (
	"fmt"
	"regexp"
)

// Rule is one entry of a catalog: a set of substring terms or a single
// regular expression, tagged with a category and a severity weight.
//
// Weights are signed. Additive catalogs (URL, message) carry positive
// weights; the subtractive email catalog carries negative penalties.
type Rule struct {
	// Category groups rules for recommendation lookup and deduplication.
	Category string

	// Label is the human-readable prefix for indicators produced by this
	// rule. Keyword rules append the matched terms to it.
	Label string

	// Terms are matched by case-insensitive substring containment. Ignored
	// when Pattern is set.
	Terms []string

	// Pattern, when non-nil, makes this a regex rule.
	Pattern *regexp.Regexp

	// Weight is the score contribution per matched term (keyword rules) or
	// per rule (regex and categorical rules).
	Weight int

	// Categorical rules contribute at most once no matter how many of
	// their terms match, e.g. domain-membership checks.
	Categorical bool
}

// Catalog is a static, versioned table of rules for one analyzer domain.
// Catalogs are built once at process start and are read-only afterwards.
type Catalog struct {
	Name    string
	Version string
	Rules   []Rule
}

// Validate checks the catalog against its recommendation map. A rule whose
// category has no advice entry is a wiring mistake that must surface at
// startup, not at analysis time.
func (c *Catalog) Validate(advice map[string]string) error {
	seen := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		if r.Category == "" {
			return fmt.Errorf("catalog %s: rule %d has no category", c.Name, i)
		}
		if r.Pattern == nil && len(r.Terms) == 0 {
			return fmt.Errorf("catalog %s: rule %d (%s) has neither terms nor pattern", c.Name, i, r.Category)
		}
		if r.Weight == 0 {
			return fmt.Errorf("catalog %s: rule %d (%s) has zero weight", c.Name, i, r.Category)
		}
		if _, ok := advice[r.Category]; !ok {
			return fmt.Errorf("catalog %s: category %q has no recommendation", c.Name, r.Category)
		}
		seen[r.Category] = true
	}
	return nil
}
