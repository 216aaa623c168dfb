package ports

import (
	"context"

	"github.com/workwatchhq/agent/internal/domain"
)

// ActivityExporter exports tracking telemetry to an external
// observability system.
type ActivityExporter interface {
	// ExportMetric exports one flushed activity metric.
	ExportMetric(ctx context.Context, m *domain.ActivityMetric) error
	// ExportAppSession exports a closed app session.
	ExportAppSession(ctx context.Context, s *domain.AppSession) error
	// ExportAlert exports an emitted alert.
	ExportAlert(ctx context.Context, a *domain.Alert) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
