package ports

import (
	"context"

	"github.com/workwatchhq/agent/internal/domain"
)

// ActivityLogRepository is the append-only sink for per-poll log entries.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLogEntry) error
}

// SessionRepository persists closed app and web sessions. Sessions are
// only ever written once, after they close.
type SessionRepository interface {
	CreateAppSession(ctx context.Context, session *domain.AppSession) error
	CreateWebSession(ctx context.Context, session *domain.WebSession) error
	ListRecentAppSessions(ctx context.Context, userID string, limit int) ([]*domain.AppSession, error)
}

// MetricRepository persists activity metric snapshots.
type MetricRepository interface {
	Create(ctx context.Context, metric *domain.ActivityMetric) error
}

// AlertRepository persists alerts and exposes a recent-alerts read for
// the CLI. The engine never updates or deletes alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Alert, error)
}

// ScreenshotRepository persists uploaded-screenshot records.
type ScreenshotRepository interface {
	Create(ctx context.Context, shot *domain.Screenshot) error
}

// CommandInbox is a filtered change-feed over screenshot commands.
// Subscribe delivers every command for the user that is pending at
// subscription time or becomes pending later; the channel closes when
// ctx is cancelled. MarkCompleted transitions a serviced command.
type CommandInbox interface {
	Subscribe(ctx context.Context, userID string) (<-chan domain.ScreenshotCommand, error)
	CreateCommand(ctx context.Context, cmd *domain.ScreenshotCommand) error
	MarkCompleted(ctx context.Context, commandID string) error
}
