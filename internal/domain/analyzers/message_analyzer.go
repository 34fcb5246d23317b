package analyzers

import (
	"time"

	"github.com/guardshell/riskscan/internal/domain"
	"github.com/guardshell/riskscan/internal/domain/rules"
	"github.com/guardshell/riskscan/internal/domain/scoring"
)

// MessageAnalyzer scores message bodies for phishing traits. Pure additive
// catalog scoring, no structural checks, no network.
//
// The threshold table deliberately differs from the URL analyzer's: message
// heuristics saturate lower, so the high band starts at 70 rather than 80.
type MessageAnalyzer struct {
	engine *scoring.Engine
}

func messageProfile() scoring.Profile {
	return scoring.Profile{
		Name: "message",
		Base: 0,
		Bands: []scoring.Band{
			{Min: 70, Tier: domain.TierHigh},
			{Min: 40, Tier: domain.TierMedium},
			{Min: 0, Tier: domain.TierLow},
		},
	}
}

// NewMessageAnalyzer builds the analyzer, validating the catalog at startup.
func NewMessageAnalyzer() (*MessageAnalyzer, error) {
	engine, err := scoring.New(rules.MessageCatalog(), messageProfile(), rules.MessageAdvice())
	if err != nil {
		return nil, err
	}
	return &MessageAnalyzer{engine: engine}, nil
}

// Analyze assesses a message body. Empty or whitespace-only input returns
// nil.
func (a *MessageAnalyzer) Analyze(body string) *domain.MessageAssessment {
	text := scoring.Normalize(body)
	if text == "" {
		return nil
	}

	indicators := a.engine.Match(text)
	score := a.engine.Aggregate(a.engine.Base(), indicators)
	tier := a.engine.Classify(score)

	return &domain.MessageAssessment{
		RiskAssessment: domain.RiskAssessment{
			Score:           score,
			Tier:            tier,
			Indicators:      indicators,
			Recommendations: a.engine.Recommend(indicators),
			Category:        string(tier),
			AnalyzedAt:      time.Now().UTC(),
		},
		Risk: score > 40,
	}
}
