package rules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Validate(t *testing.T) {
	advice := map[string]string{"known": "advice"}

	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{
			name: "valid keyword rule",
			rule: Rule{Category: "known", Label: "x", Terms: []string{"a"}, Weight: 5},
		},
		{
			name: "valid regex rule",
			rule: Rule{Category: "known", Label: "x", Pattern: regexp.MustCompile(`a`), Weight: -5},
		},
		{
			name:    "missing category",
			rule:    Rule{Label: "x", Terms: []string{"a"}, Weight: 5},
			wantErr: true,
		},
		{
			name:    "no terms and no pattern",
			rule:    Rule{Category: "known", Label: "x", Weight: 5},
			wantErr: true,
		},
		{
			name:    "zero weight",
			rule:    Rule{Category: "known", Label: "x", Terms: []string{"a"}},
			wantErr: true,
		},
		{
			name:    "category without recommendation",
			rule:    Rule{Category: "orphan", Label: "x", Terms: []string{"a"}, Weight: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &Catalog{Name: "test", Rules: []Rule{tt.rule}}
			err := catalog.Validate(advice)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// The shipped catalogs must pass their own validation; a drifted category
// name should break the build of the process, not an analysis call.
func TestShippedCatalogsValidate(t *testing.T) {
	assert.NoError(t, URLCatalog().Validate(URLAdvice()))
	assert.NoError(t, MessageCatalog().Validate(MessageAdvice()))
	assert.NoError(t, EmailCatalog().Validate(EmailAdvice()))
}

// Structural check categories are emitted by the facades, outside the
// catalogs, but still need recommendation coverage.
func TestFacadeCategoriesHaveAdvice(t *testing.T) {
	urlAdvice := URLAdvice()
	for _, cat := range []string{CatMaliciousDomain, CatSuspiciousDomain, CatSafeDomain, CatSubdomainDepth, CatBrandLookalike} {
		assert.Contains(t, urlAdvice, cat)
	}

	emailAdvice := EmailAdvice()
	for _, cat := range []string{CatEmailFormat, CatNoMX, CatNoSPF, CatNoDMARC, CatBreached, CatPersonalInfo, CatEmailHealthy} {
		assert.Contains(t, emailAdvice, cat)
	}
}

func TestEmailSyntax(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.org", "user+tag@mail.example.com"}
	invalid := []string{"", "plain", "@nouser.com", "user@", "user@tld", "user@@x.com"}

	for _, addr := range valid {
		assert.True(t, EmailSyntax.MatchString(addr), addr)
	}
	for _, addr := range invalid {
		assert.False(t, EmailSyntax.MatchString(addr), addr)
	}
}
