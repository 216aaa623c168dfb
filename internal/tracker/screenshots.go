package tracker

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/workwatchhq/agent/internal/domain"
)

// randomCaptureDelay draws a fresh uniform interval from
// [ScreenshotMin, ScreenshotMax] so captures stay unpredictable.
func (e *Engine) randomCaptureDelay() time.Duration {
	spread := e.cfg.ScreenshotMax - e.cfg.ScreenshotMin
	return e.cfg.ScreenshotMin + rand.N(spread)
}

// capture grabs one screenshot, stores the image, and persists the
// record. When cmd is non-nil the capture was requested on demand and
// the command is marked completed only after the whole chain succeeds.
// Every failure here is logged and swallowed: a bad capture must never
// take the scheduler down, and failed commands are not retried.
func (e *Engine) capture(ctx context.Context, cmd *domain.ScreenshotCommand) {
	cctx, cancel := context.WithTimeout(ctx, e.cfg.CaptureTimeout)
	defer cancel()

	image, err := e.deps.Sampler.CaptureScreen(cctx)
	if err != nil {
		e.deps.Logger.Error(fmt.Sprintf("screen capture failed: %v", err))
		return
	}
	if len(image) == 0 {
		e.deps.Logger.Debug("screen capture unavailable, skipping")
		return
	}

	now := e.deps.Clock.Now()

	path, err := e.deps.Store.Store(cctx, e.cfg.UserID, now, image)
	if err != nil {
		e.deps.Logger.Error(fmt.Sprintf("screenshot upload failed: %v", err))
		return
	}

	shot := &domain.Screenshot{
		ID:         uuid.NewString(),
		UserID:     e.cfg.UserID,
		CapturedAt: now,
		StoredPath: path,
		SizeBytes:  int64(len(image)),
		OnDemand:   cmd != nil,
	}

	pctx, pcancel := e.persistCtx()
	defer pcancel()
	if err := e.deps.Screenshots.Create(pctx, shot); err != nil {
		e.deps.Logger.Error(fmt.Sprintf("persist screenshot record: %v", err))
		return
	}

	if cmd != nil {
		if err := e.deps.Inbox.MarkCompleted(pctx, cmd.ID); err != nil {
			e.deps.Logger.Error(fmt.Sprintf("mark command %s completed: %v", cmd.ID, err))
		}
	}
}
