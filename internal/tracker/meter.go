package tracker

import (
	"fmt"

	"github.com/workwatchhq/agent/internal/domain"
)

// Input event callbacks. These arrive from the host on arbitrary
// goroutines; each bumps its counter and the last-activity stamp.

// RecordKeyPress registers one keystroke.
func (e *Engine) RecordKeyPress() {
	now := e.deps.Clock.Now()
	e.mu.Lock()
	e.keys++
	e.lastActivity = now
	e.mu.Unlock()
}

// RecordClick registers one mouse click.
func (e *Engine) RecordClick() {
	now := e.deps.Clock.Now()
	e.mu.Lock()
	e.clicks++
	e.lastActivity = now
	e.mu.Unlock()
}

// RecordPointerMove registers pointer motion. Motion refreshes the
// last-activity stamp but carries no score weight.
func (e *Engine) RecordPointerMove() {
	now := e.deps.Clock.Now()
	e.mu.Lock()
	e.lastActivity = now
	e.mu.Unlock()
}

// flush snapshots and resets the counters, then persists one activity
// metric. An all-zero metric still goes out: confirmed inactivity is
// meaningful telemetry. The last-activity stamp survives the reset.
func (e *Engine) flush() {
	now := e.deps.Clock.Now()

	e.mu.Lock()
	keys, clicks := e.keys, e.clicks
	e.keys, e.clicks = 0, 0
	e.mu.Unlock()

	metric := &domain.ActivityMetric{
		UserID:          e.cfg.UserID,
		Timestamp:       now,
		KeysPerMinute:   keys,
		ClicksPerMinute: clicks,
		ActivityLevel:   domain.CalculateActivityLevel(keys, clicks),
	}

	ctx, cancel := e.persistCtx()
	defer cancel()
	if err := e.deps.Metrics.Create(ctx, metric); err != nil {
		e.deps.Logger.Error(fmt.Sprintf("persist activity metric: %v", err))
		return
	}
	if err := e.deps.Exporter.ExportMetric(ctx, metric); err != nil {
		e.deps.Logger.Debug(fmt.Sprintf("export activity metric: %v", err))
	}
}
