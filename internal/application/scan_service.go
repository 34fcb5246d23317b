package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/guardshell/riskscan/internal/domain"
	"github.com/guardshell/riskscan/internal/domain/analyzers"
	"github.com/guardshell/riskscan/internal/ports"
)

// ScanService orchestrates the three analyzers and the scan history.
//
// Error handling strategy:
//   - A nil assessment (empty input) is a normal outcome, not an error.
//   - History write failures are logged and absorbed: the caller still gets
//     the completed assessment.
//   - High-risk results are logged for operator visibility.
type ScanService struct {
	urls     *analyzers.URLAnalyzer
	messages *analyzers.MessageAnalyzer
	emails   *analyzers.EmailAnalyzer
	store    ports.Store
	logger   *slog.Logger
}

// NewScanService wires the analyzers and store together.
func NewScanService(
	urls *analyzers.URLAnalyzer,
	messages *analyzers.MessageAnalyzer,
	emails *analyzers.EmailAnalyzer,
	store ports.Store,
	logger *slog.Logger,
) *ScanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanService{
		urls:     urls,
		messages: messages,
		emails:   emails,
		store:    store,
		logger:   logger,
	}
}

// ScanURL assesses a URL and records it in the history. Returns nil for
// empty input.
func (s *ScanService) ScanURL(ctx context.Context, rawURL string) *domain.URLAssessment {
	assessment := s.urls.Analyze(rawURL)
	if assessment == nil {
		return nil
	}
	s.record(ctx, domain.ScanURL, assessment.URL, &assessment.RiskAssessment)
	return assessment
}

// ScanMessage assesses a message body and records it in the history.
// Returns nil for empty input.
func (s *ScanService) ScanMessage(ctx context.Context, body string) *domain.MessageAssessment {
	assessment := s.messages.Analyze(body)
	if assessment == nil {
		return nil
	}
	s.record(ctx, domain.ScanMessage, truncate(body, 200), &assessment.RiskAssessment)
	return assessment
}

// ScanEmail assesses an email address, waiting on enrichment, and records
// the result. Returns (nil, nil) for empty input; the only error is context
// cancellation.
func (s *ScanService) ScanEmail(ctx context.Context, email string) (*domain.EmailAssessment, error) {
	assessment, err := s.emails.Analyze(ctx, email)
	if err != nil || assessment == nil {
		return nil, err
	}
	s.record(ctx, domain.ScanEmail, assessment.Email, &assessment.RiskAssessment)
	return assessment, nil
}

// History returns the most recent scan records.
func (s *ScanService) History(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	return s.store.List(ctx, limit)
}

// ClearHistory discards all scan records.
func (s *ScanService) ClearHistory(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// GetSetting reads one settings value.
func (s *ScanService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, key)
}

// SetSetting writes one settings value.
func (s *ScanService) SetSetting(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, key, value)
}

func (s *ScanService) record(ctx context.Context, kind domain.ScanKind, input string, result *domain.RiskAssessment) {
	rec := &domain.ScanRecord{
		ID:        uuid.New(),
		Kind:      kind,
		Input:     input,
		Score:     result.Score,
		Tier:      result.Tier,
		Category:  result.Category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Append(ctx, rec); err != nil {
		// History is best-effort; the assessment itself already succeeded.
		s.logger.Warn("failed to record scan", "kind", kind, "error", err)
	}

	if result.Tier == domain.TierHigh || result.Tier == domain.TierCritical || result.Tier == domain.TierDanger {
		s.logger.Info("high risk scan result",
			"kind", kind,
			"score", result.Score,
			"tier", result.Tier,
			"indicators", len(result.Indicators),
		)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
