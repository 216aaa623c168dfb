// Package sampler adapts host desktop tooling to the HostSampler port.
package sampler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
	"github.com/workwatchhq/agent/internal/ports"
)

// ExecSampler shells out to configurable host commands. The poll command
// prints "appName<TAB>windowTitle" for the foreground window; the
// capture command writes an encoded image to stdout. Empty output from
// either command means the host has nothing to report right now.
type ExecSampler struct {
	pollCmd    string
	captureCmd string
	clock      ports.Clock
}

func NewExecSampler(pollCmd, captureCmd string, clock ports.Clock) *ExecSampler {
	return &ExecSampler{
		pollCmd:    pollCmd,
		captureCmd: captureCmd,
		clock:      clock,
	}
}

func (s *ExecSampler) PollActiveWindow(ctx context.Context) (*domain.Sample, error) {
	out, err := runCommand(ctx, s.pollCmd)
	if err != nil {
		return nil, fmt.Errorf("poll command: %w", err)
	}

	line := strings.TrimSpace(string(out))
	if line == "" {
		return nil, nil
	}

	appName, windowTitle, _ := strings.Cut(line, "\t")
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return nil, nil
	}

	return &domain.Sample{
		AppName:     appName,
		WindowTitle: strings.TrimSpace(windowTitle),
		ObservedAt:  s.clock.Now(),
	}, nil
}

func (s *ExecSampler) CaptureScreen(ctx context.Context) ([]byte, error) {
	out, err := runCommand(ctx, s.captureCmd)
	if err != nil {
		return nil, fmt.Errorf("capture command: %w", err)
	}
	return out, nil
}

func runCommand(ctx context.Context, command string) ([]byte, error) {
	if command == "" {
		return nil, nil
	}

	// A stuck host tool must not wedge the caller past its deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}
