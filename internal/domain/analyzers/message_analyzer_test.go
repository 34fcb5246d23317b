package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardshell/riskscan/internal/domain"
	"github.com/guardshell/riskscan/internal/domain/rules"
)

func newMessageAnalyzer(t *testing.T) *MessageAnalyzer {
	t.Helper()
	a, err := NewMessageAnalyzer()
	require.NoError(t, err)
	return a
}

func TestMessageAnalyzer_EmptyInput(t *testing.T) {
	a := newMessageAnalyzer(t)
	assert.Nil(t, a.Analyze(""))
	assert.Nil(t, a.Analyze("  \n  "))
}

func TestMessageAnalyzer_BenignMessage(t *testing.T) {
	a := newMessageAnalyzer(t)

	result := a.Analyze("Thanks for your purchase! Your order #12345 will arrive tomorrow.")
	require.NotNil(t, result)

	assert.Equal(t, domain.TierLow, result.Tier)
	assert.False(t, result.Risk)
	assert.LessOrEqual(t, result.Score, 30)
}

func TestMessageAnalyzer_ClassicPhishing(t *testing.T) {
	a := newMessageAnalyzer(t)

	result := a.Analyze("URGENT: Your PayPal account will be suspended in 24 hours. Click here: http://paypal-security.fake/verify")
	require.NotNil(t, result)

	assert.GreaterOrEqual(t, result.Score, 70)
	assert.Equal(t, domain.TierHigh, result.Tier)
	assert.True(t, result.Risk)
	assert.Equal(t, string(domain.TierHigh), result.Category)

	categories := make(map[string]bool)
	for _, ind := range result.Indicators {
		categories[ind.Category] = true
	}
	assert.True(t, categories[rules.CatUrgency], "should flag urgency language")
	assert.True(t, categories[rules.CatThreat], "should flag suspension threat")
	assert.True(t, categories[rules.CatImpersonation], "should flag brand impersonation")
	assert.True(t, categories[rules.CatInsecureLink], "should flag the http link")
}

func TestMessageAnalyzer_CumulativeCategoryStacking(t *testing.T) {
	a := newMessageAnalyzer(t)

	one := a.Analyze("this is urgent")
	many := a.Analyze("urgent, act now, final notice, expires immediately")
	require.NotNil(t, one)
	require.NotNil(t, many)

	// Multiple urgency terms stack without a per-category cap.
	assert.Greater(t, many.Score, one.Score)
}

func TestMessageAnalyzer_RiskBoundary(t *testing.T) {
	a := newMessageAnalyzer(t)

	// Two financial terms and one urgency term: 10+10+15 = 35, under the
	// risk line.
	under := a.Analyze("urgent bank payment")
	require.NotNil(t, under)
	assert.Equal(t, 35, under.Score)
	assert.False(t, under.Risk)
	assert.Equal(t, domain.TierLow, under.Tier)

	// Adding a credential term crosses into the medium band.
	over := a.Analyze("urgent bank payment, verify")
	require.NotNil(t, over)
	assert.Equal(t, 55, over.Score)
	assert.True(t, over.Risk)
	assert.Equal(t, domain.TierMedium, over.Tier)
}

func TestMessageAnalyzer_RecommendationsDeduplicated(t *testing.T) {
	a := newMessageAnalyzer(t)

	result := a.Analyze("urgent! act now! final notice! expires today! asap!")
	require.NotNil(t, result)

	seen := make(map[string]int)
	for _, rec := range result.Recommendations {
		seen[rec]++
	}
	for rec, count := range seen {
		assert.Equal(t, 1, count, "duplicate recommendation: %s", rec)
	}
}

func TestMessageAnalyzer_Idempotent(t *testing.T) {
	a := newMessageAnalyzer(t)
	text := "verify your password at http://bank.example"

	first := a.Analyze(text)
	second := a.Analyze(text)
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Indicators, second.Indicators)
	assert.Equal(t, first.Recommendations, second.Recommendations)
	assert.Equal(t, first.Risk, second.Risk)
}
