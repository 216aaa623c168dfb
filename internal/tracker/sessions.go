package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
)

// poll runs one cycle of both session sub-machines and appends the raw
// activity log entry. A sampler miss (locked screen, no focus) skips the
// whole cycle without touching state.
func (e *Engine) poll(ctx context.Context) {
	sctx, cancel := context.WithTimeout(ctx, e.cfg.PollInterval)
	sample, err := e.deps.Sampler.PollActiveWindow(sctx)
	cancel()
	if err != nil {
		e.deps.Logger.Debug(fmt.Sprintf("window poll failed: %v", err))
		return
	}
	if sample == nil {
		return
	}

	now := e.deps.Clock.Now()

	// The web entity only exists while a recognized browser holds focus.
	webEntity := ""
	if domain.IsBrowser(sample.AppName) {
		webEntity = domain.ExtractDomain(sample.WindowTitle)
	}

	e.mu.Lock()
	closedApp, closedWeb := e.transition(sample.AppName, webEntity, now)
	e.mu.Unlock()

	if closedApp != nil {
		e.persistAppSession(closedApp)
	}
	if closedWeb != nil {
		e.persistWebSession(closedWeb)
		e.evaluateWebSession(closedWeb)
	}

	entry := &domain.ActivityLogEntry{
		UserID:      e.cfg.UserID,
		Timestamp:   now,
		AppName:     sample.AppName,
		WindowTitle: sample.WindowTitle,
		URL:         webEntity,
		AppCategory: domain.CategorizeApp(sample.AppName),
	}
	if webEntity != "" {
		entry.SiteCategory = domain.CategorizeSite(webEntity)
	}

	pctx, cancel := e.persistCtx()
	defer cancel()
	if err := e.deps.Logs.Create(pctx, entry); err != nil {
		e.deps.Logger.Error(fmt.Sprintf("persist activity log: %v", err))
	}
}

// transition advances both sub-machines to the newly observed entities
// and returns whichever sessions closed. An entity change closes the
// open session at now and, when the new entity is non-empty, immediately
// opens the next one at the same instant. Caller holds e.mu.
func (e *Engine) transition(appName, webEntity string, now time.Time) (*domain.AppSession, *domain.WebSession) {
	var closedApp *domain.AppSession
	var closedWeb *domain.WebSession

	if e.appOpen && e.appName != appName {
		s := domain.NewAppSession(e.cfg.UserID, e.appName, e.appStart, now)
		closedApp = &s
		e.appOpen = false
	}
	if !e.appOpen && appName != "" {
		e.appOpen = true
		e.appName = appName
		e.appStart = now
	}

	if e.webOpen && e.webDomain != webEntity {
		s := domain.NewWebSession(e.cfg.UserID, e.webDomain, e.webStart, now)
		closedWeb = &s
		e.webOpen = false
	}
	if !e.webOpen && webEntity != "" {
		e.webOpen = true
		e.webDomain = webEntity
		e.webStart = now
	}

	return closedApp, closedWeb
}

// closeOpenSessions force-closes whatever is open, used when tracking
// stops.
func (e *Engine) closeOpenSessions(now time.Time) {
	e.mu.Lock()
	var closedApp *domain.AppSession
	var closedWeb *domain.WebSession
	if e.appOpen {
		s := domain.NewAppSession(e.cfg.UserID, e.appName, e.appStart, now)
		closedApp = &s
		e.appOpen = false
	}
	if e.webOpen {
		s := domain.NewWebSession(e.cfg.UserID, e.webDomain, e.webStart, now)
		closedWeb = &s
		e.webOpen = false
	}
	e.mu.Unlock()

	if closedApp != nil {
		e.persistAppSession(closedApp)
	}
	if closedWeb != nil {
		e.persistWebSession(closedWeb)
		e.evaluateWebSession(closedWeb)
	}
}

// persistAppSession writes a closed app session, dropping zero-duration
// sessions: two entity changes inside one poll instant carry no signal.
func (e *Engine) persistAppSession(s *domain.AppSession) {
	if s.DurationMs <= 0 {
		return
	}

	ctx, cancel := e.persistCtx()
	defer cancel()
	if err := e.deps.Sessions.CreateAppSession(ctx, s); err != nil {
		e.deps.Logger.Error(fmt.Sprintf("persist app session %q: %v", s.AppName, err))
		return
	}
	if err := e.deps.Exporter.ExportAppSession(ctx, s); err != nil {
		e.deps.Logger.Debug(fmt.Sprintf("export app session: %v", err))
	}
}

func (e *Engine) persistWebSession(s *domain.WebSession) {
	if s.DurationMs <= 0 {
		return
	}

	ctx, cancel := e.persistCtx()
	defer cancel()
	if err := e.deps.Sessions.CreateWebSession(ctx, s); err != nil {
		e.deps.Logger.Error(fmt.Sprintf("persist web session %q: %v", s.URL, err))
	}
}
