package ports

import (
	"context"

	"github.com/workwatchhq/agent/internal/domain"
)

// HostSampler observes the host desktop. Both operations may legitimately
// come back empty (locked screen, no focus, capture unavailable); the
// engine treats that as transient and retries next cycle.
type HostSampler interface {
	// PollActiveWindow returns the current foreground window, or nil
	// when the host has none to report.
	PollActiveWindow(ctx context.Context) (*domain.Sample, error)
	// CaptureScreen returns encoded image bytes for the current screen.
	CaptureScreen(ctx context.Context) ([]byte, error)
}
