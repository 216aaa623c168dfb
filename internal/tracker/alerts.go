package tracker

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/workwatchhq/agent/internal/domain"
)

// evaluateWebSession emits an alert for every closed unproductive web
// session. Repeat visits to the same domain alert again each time.
func (e *Engine) evaluateWebSession(s *domain.WebSession) {
	if s.DurationMs <= 0 || s.Category != domain.TierUnproductive {
		return
	}

	alert := domain.NewUnproductiveSiteAlert(uuid.NewString(), e.cfg.UserID, s.URL, s.EndTime)
	e.emitAlert(&alert)
}

// checkInactivity runs on the flush cadence. While the idle condition
// holds it fires again on every check; there is deliberately no
// suppression window (see DESIGN.md).
func (e *Engine) checkInactivity() {
	now := e.deps.Clock.Now()

	e.mu.Lock()
	idle := now.Sub(e.lastActivity)
	e.mu.Unlock()

	if idle <= e.cfg.InactivityThreshold {
		return
	}

	alert := domain.NewInactivityAlert(uuid.NewString(), e.cfg.UserID, idle, now)
	e.emitAlert(&alert)
}

func (e *Engine) emitAlert(alert *domain.Alert) {
	ctx, cancel := e.persistCtx()
	defer cancel()
	if err := e.deps.Alerts.Create(ctx, alert); err != nil {
		e.deps.Logger.Error(fmt.Sprintf("persist %s alert: %v", alert.Type, err))
		return
	}
	if err := e.deps.Exporter.ExportAlert(ctx, alert); err != nil {
		e.deps.Logger.Debug(fmt.Sprintf("export alert: %v", err))
	}
}
