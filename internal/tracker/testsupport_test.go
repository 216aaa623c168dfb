package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
)

// fakeClock is a manually advanced clock shared by engine and test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakeSampler serves a scripted sequence of samples. A nil entry means
// "no window this cycle". After the script runs out it keeps returning
// the last entry.
type fakeSampler struct {
	mu      sync.Mutex
	script  []*domain.Sample
	idx     int
	image   []byte
	capErr  error
	capped  int
}

func (s *fakeSampler) PollActiveWindow(ctx context.Context) (*domain.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.script) == 0 {
		return nil, nil
	}
	i := s.idx
	if i >= len(s.script) {
		i = len(s.script) - 1
	} else {
		s.idx++
	}
	return s.script[i], nil
}

func (s *fakeSampler) CaptureScreen(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capped++
	if s.capErr != nil {
		return nil, s.capErr
	}
	return s.image, nil
}

func (s *fakeSampler) captureAttempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capped
}

// memoryGateway implements every persistence port in memory.
type memoryGateway struct {
	mu          sync.Mutex
	logs        []*domain.ActivityLogEntry
	appSessions []*domain.AppSession
	webSessions []*domain.WebSession
	metrics     []*domain.ActivityMetric
	alerts      []*domain.Alert
	screenshots []*domain.Screenshot
	completed   []string
	commands    chan domain.ScreenshotCommand

	failSessions bool
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{commands: make(chan domain.ScreenshotCommand, 8)}
}

func (g *memoryGateway) Create(ctx context.Context, entry *domain.ActivityLogEntry) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logs = append(g.logs, entry)
	return nil
}

func (g *memoryGateway) CreateAppSession(ctx context.Context, s *domain.AppSession) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failSessions {
		return errors.New("gateway down")
	}
	g.appSessions = append(g.appSessions, s)
	return nil
}

func (g *memoryGateway) CreateWebSession(ctx context.Context, s *domain.WebSession) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failSessions {
		return errors.New("gateway down")
	}
	g.webSessions = append(g.webSessions, s)
	return nil
}

func (g *memoryGateway) ListRecentAppSessions(ctx context.Context, userID string, limit int) ([]*domain.AppSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*domain.AppSession(nil), g.appSessions...), nil
}

func (g *memoryGateway) CreateMetric(ctx context.Context, m *domain.ActivityMetric) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.metrics = append(g.metrics, m)
	return nil
}

func (g *memoryGateway) CreateAlert(ctx context.Context, a *domain.Alert) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.alerts = append(g.alerts, a)
	return nil
}

func (g *memoryGateway) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Alert, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*domain.Alert(nil), g.alerts...), nil
}

func (g *memoryGateway) CreateScreenshot(ctx context.Context, s *domain.Screenshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.screenshots = append(g.screenshots, s)
	return nil
}

func (g *memoryGateway) Subscribe(ctx context.Context, userID string) (<-chan domain.ScreenshotCommand, error) {
	return g.commands, nil
}

func (g *memoryGateway) CreateCommand(ctx context.Context, cmd *domain.ScreenshotCommand) error {
	g.commands <- *cmd
	return nil
}

func (g *memoryGateway) MarkCompleted(ctx context.Context, commandID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.completed = append(g.completed, commandID)
	return nil
}

func (g *memoryGateway) snapshot() memorySnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return memorySnapshot{
		logs:        len(g.logs),
		appSessions: append([]*domain.AppSession(nil), g.appSessions...),
		webSessions: append([]*domain.WebSession(nil), g.webSessions...),
		metrics:     append([]*domain.ActivityMetric(nil), g.metrics...),
		alerts:      append([]*domain.Alert(nil), g.alerts...),
		screenshots: append([]*domain.Screenshot(nil), g.screenshots...),
		completed:   append([]string(nil), g.completed...),
	}
}

type memorySnapshot struct {
	logs        int
	appSessions []*domain.AppSession
	webSessions []*domain.WebSession
	metrics     []*domain.ActivityMetric
	alerts      []*domain.Alert
	screenshots []*domain.Screenshot
	completed   []string
}

// metricAdapter bridges memoryGateway to the narrower repository ports
// whose method names collide on Create.
type metricRepo struct{ g *memoryGateway }

func (r metricRepo) Create(ctx context.Context, m *domain.ActivityMetric) error {
	return r.g.CreateMetric(ctx, m)
}

type alertRepo struct{ g *memoryGateway }

func (r alertRepo) Create(ctx context.Context, a *domain.Alert) error {
	return r.g.CreateAlert(ctx, a)
}

func (r alertRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Alert, error) {
	return r.g.ListRecent(ctx, userID, limit)
}

type screenshotRepo struct{ g *memoryGateway }

func (r screenshotRepo) Create(ctx context.Context, s *domain.Screenshot) error {
	return r.g.CreateScreenshot(ctx, s)
}

// memoryStore is an in-memory ScreenshotStore.
type memoryStore struct {
	mu     sync.Mutex
	stored int
	err    error
}

func (s *memoryStore) Store(ctx context.Context, userID string, capturedAt time.Time, image []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.stored++
	return "/tmp/shots/" + userID + ".png", nil
}

// nopExporter ignores all telemetry.
type nopExporter struct{}

func (nopExporter) ExportMetric(ctx context.Context, m *domain.ActivityMetric) error  { return nil }
func (nopExporter) ExportAppSession(ctx context.Context, s *domain.AppSession) error  { return nil }
func (nopExporter) ExportAlert(ctx context.Context, a *domain.Alert) error            { return nil }
func (nopExporter) Close(ctx context.Context) error                                   { return nil }

// nopLogger drops everything.
type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Error(string) {}

func newTestEngine(cfg Config, sampler *fakeSampler, gw *memoryGateway, clock *fakeClock) *Engine {
	if cfg.UserID == "" {
		cfg.UserID = "u-test"
	}
	store := &memoryStore{}
	return New(cfg, Deps{
		Sampler:     sampler,
		Logs:        gw,
		Sessions:    gw,
		Metrics:     metricRepo{gw},
		Alerts:      alertRepo{gw},
		Screenshots: screenshotRepo{gw},
		Store:       store,
		Inbox:       gw,
		Exporter:    nopExporter{},
		Clock:       clock,
		Logger:      nopLogger{},
	})
}
