package ports

import (
	"context"

	"github.com/guardshell/riskscan/internal/domain"
)

// HistoryStore persists scan history records. The default implementation is
// in-memory and session-scoped; the Postgres adapter is for deployments that
// want history to survive restarts.
type HistoryStore interface {
	Append(ctx context.Context, record *domain.ScanRecord) error
	List(ctx context.Context, limit int) ([]domain.ScanRecord, error)
	Clear(ctx context.Context) error
}

// SettingsStore is plain key-value persistence for application settings
// (chat-assistant provider choice, API credentials). Not part of the scoring
// contract.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store bundles the persistence ports behind one lifecycle.
type Store interface {
	HistoryStore
	SettingsStore
	Close() error
}
