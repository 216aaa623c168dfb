package otel

import (
	"context"

	"github.com/workwatchhq/agent/internal/domain"
)

// NoOpExporter is an ActivityExporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) ExportMetric(ctx context.Context, m *domain.ActivityMetric) error {
	return nil
}

func (e *NoOpExporter) ExportAppSession(ctx context.Context, s *domain.AppSession) error {
	return nil
}

func (e *NoOpExporter) ExportAlert(ctx context.Context, a *domain.Alert) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
