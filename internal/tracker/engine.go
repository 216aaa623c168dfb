package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
	"github.com/workwatchhq/agent/internal/ports"
)

// Config holds the timing policy for one tracked user.
type Config struct {
	UserID              string
	PollInterval        time.Duration
	FlushInterval       time.Duration
	ScreenshotMin       time.Duration
	ScreenshotMax       time.Duration
	InactivityThreshold time.Duration
	CaptureTimeout      time.Duration
	PersistTimeout      time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = 30 * time.Second
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = time.Minute
	}
	if c.ScreenshotMin <= 0 {
		c.ScreenshotMin = 5 * time.Minute
	}
	if c.ScreenshotMax <= c.ScreenshotMin {
		c.ScreenshotMax = c.ScreenshotMin + 10*time.Minute
	}
	if c.InactivityThreshold <= 0 {
		c.InactivityThreshold = 20 * time.Minute
	}
	if c.CaptureTimeout <= 0 {
		c.CaptureTimeout = 30 * time.Second
	}
	if c.PersistTimeout <= 0 {
		c.PersistTimeout = 10 * time.Second
	}
	return c
}

// Deps are the collaborators the engine writes to and reads from.
type Deps struct {
	Sampler     ports.HostSampler
	Logs        ports.ActivityLogRepository
	Sessions    ports.SessionRepository
	Metrics     ports.MetricRepository
	Alerts      ports.AlertRepository
	Screenshots ports.ScreenshotRepository
	Store       ports.ScreenshotStore
	Inbox       ports.CommandInbox
	Exporter    ports.ActivityExporter
	Clock       ports.Clock
	Logger      ports.Logger
}

// Engine turns the raw sample stream for a single user into durable
// sessions, metrics, screenshots and alerts. All tracking state lives on
// the instance; one Engine per tracked user, no shared globals.
//
// A single run loop owns the poll, flush and screenshot timers plus the
// command feed. Input events arrive from host callbacks on arbitrary
// goroutines, so every piece of mutable state sits behind one mutex.
type Engine struct {
	cfg  Config
	deps Deps

	mu sync.Mutex
	// app sub-machine: Idle when appOpen is false.
	appOpen  bool
	appName  string
	appStart time.Time
	// web sub-machine, same shape.
	webOpen   bool
	webDomain string
	webStart  time.Time
	// activity meter counters, reset on every flush.
	keys         int
	clicks       int
	lastActivity time.Time

	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	// overridable in tests
	captureDelay func() time.Duration
}

// New creates an engine for one user. Missing config values fall back to
// the documented defaults.
func New(cfg Config, deps Deps) *Engine {
	e := &Engine{
		cfg:  cfg.withDefaults(),
		deps: deps,
		done: make(chan struct{}),
	}
	e.captureDelay = e.randomCaptureDelay
	return e
}

// Start subscribes to the command inbox and launches the run loop.
// Calling Start on a running engine is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = true
	now := e.deps.Clock.Now()
	e.lastActivity = now
	e.mu.Unlock()

	ctx, e.cancel = context.WithCancel(ctx)

	cmds, err := e.deps.Inbox.Subscribe(ctx, e.cfg.UserID)
	if err != nil {
		// Tracking keeps going without on-demand captures.
		e.deps.Logger.Error(fmt.Sprintf("command inbox unavailable: %v", err))
		cmds = nil
	}

	go e.run(ctx, cmds)
	e.deps.Logger.Debug(fmt.Sprintf("tracking started for user %s", e.cfg.UserID))
	return nil
}

// Stop cancels all timers and the command subscription, waits for the
// run loop to exit, then force-closes any open sessions using the stop
// time. No timer fires after Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	e.mu.Unlock()

	e.cancel()
	<-e.done

	e.closeOpenSessions(e.deps.Clock.Now())
	e.deps.Logger.Debug(fmt.Sprintf("tracking stopped for user %s", e.cfg.UserID))
}

func (e *Engine) run(ctx context.Context, cmds <-chan domain.ScreenshotCommand) {
	defer close(e.done)

	poll := time.NewTicker(e.cfg.PollInterval)
	defer poll.Stop()
	flush := time.NewTicker(e.cfg.FlushInterval)
	defer flush.Stop()
	shot := time.NewTimer(e.captureDelay())
	defer shot.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-poll.C:
			// Ticks that arrive while a poll is still running are
			// dropped by the ticker, so polls never overlap.
			e.poll(ctx)

		case <-flush.C:
			e.flush()
			e.checkInactivity()

		case <-shot.C:
			// Capture and upload are slow I/O; run them off the loop so
			// polling and flushing keep their cadence.
			go e.capture(ctx, nil)
			shot.Reset(e.captureDelay())

		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			go e.capture(ctx, &cmd)
		}
	}
}

// persistCtx returns a context for gateway writes. It is detached from
// the run context so an in-flight write is not aborted by Stop.
func (e *Engine) persistCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), e.cfg.PersistTimeout)
}
