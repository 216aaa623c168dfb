package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwatchhq/agent/internal/domain"
)

func TestRandomCaptureDelay_StaysInRange(t *testing.T) {
	e := newTestEngine(Config{
		ScreenshotMin: 5 * time.Minute,
		ScreenshotMax: 15 * time.Minute,
	}, &fakeSampler{}, newMemoryGateway(), newFakeClock(t0))

	for i := 0; i < 1000; i++ {
		d := e.randomCaptureDelay()
		assert.GreaterOrEqual(t, d, 5*time.Minute)
		assert.Less(t, d, 15*time.Minute)
	}
}

func TestCapture_Scheduled(t *testing.T) {
	sampler := &fakeSampler{image: []byte("png-bytes")}
	gw := newMemoryGateway()
	e := newTestEngine(Config{}, sampler, gw, newFakeClock(t0))

	e.capture(context.Background(), nil)

	snap := gw.snapshot()
	require.Len(t, snap.screenshots, 1)
	shot := snap.screenshots[0]
	assert.False(t, shot.OnDemand)
	assert.Equal(t, int64(9), shot.SizeBytes)
	assert.NotEmpty(t, shot.StoredPath)
	assert.Empty(t, snap.completed)
}

func TestCapture_CommandMarkedCompletedOnSuccess(t *testing.T) {
	sampler := &fakeSampler{image: []byte("png-bytes")}
	gw := newMemoryGateway()
	e := newTestEngine(Config{}, sampler, gw, newFakeClock(t0))

	cmd := domain.ScreenshotCommand{ID: "cmd-1", UserID: "u-test", Status: domain.CommandPending}
	e.capture(context.Background(), &cmd)

	snap := gw.snapshot()
	require.Len(t, snap.screenshots, 1)
	assert.True(t, snap.screenshots[0].OnDemand)
	assert.Equal(t, []string{"cmd-1"}, snap.completed)
}

func TestCapture_FailureSwallowedAndCommandLeftPending(t *testing.T) {
	sampler := &fakeSampler{capErr: errors.New("no display")}
	gw := newMemoryGateway()
	e := newTestEngine(Config{}, sampler, gw, newFakeClock(t0))

	cmd := domain.ScreenshotCommand{ID: "cmd-1", UserID: "u-test", Status: domain.CommandPending}
	e.capture(context.Background(), &cmd)

	snap := gw.snapshot()
	assert.Empty(t, snap.screenshots)
	// At-most-once: a failed command is not completed and not retried.
	assert.Empty(t, snap.completed)
	assert.Equal(t, 1, sampler.captureAttempts())
}

func TestCapture_EmptyImageSkipped(t *testing.T) {
	sampler := &fakeSampler{image: nil}
	gw := newMemoryGateway()
	e := newTestEngine(Config{}, sampler, gw, newFakeClock(t0))

	e.capture(context.Background(), nil)

	assert.Empty(t, gw.snapshot().screenshots)
}

func TestEngine_CommandFeedTriggersCapture(t *testing.T) {
	sampler := &fakeSampler{image: []byte("png-bytes")}
	gw := newMemoryGateway()
	clock := newFakeClock(t0)
	e := newTestEngine(Config{
		PollInterval:  time.Hour,
		FlushInterval: time.Hour,
		ScreenshotMin: time.Hour,
		ScreenshotMax: 2 * time.Hour,
	}, sampler, gw, clock)

	require.NoError(t, e.Start(context.Background()))
	defer e.Stop()

	cmd := &domain.ScreenshotCommand{ID: "cmd-42", UserID: "u-test", Status: domain.CommandPending}
	require.NoError(t, gw.CreateCommand(context.Background(), cmd))

	// The loop services the command asynchronously.
	require.Eventually(t, func() bool {
		return len(gw.snapshot().completed) == 1
	}, 2*time.Second, 10*time.Millisecond)

	snap := gw.snapshot()
	assert.Equal(t, []string{"cmd-42"}, snap.completed)
	require.Len(t, snap.screenshots, 1)
	assert.True(t, snap.screenshots[0].OnDemand)
}
