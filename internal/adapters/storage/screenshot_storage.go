package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/workwatchhq/agent/internal/util"
)

// ScreenshotStorage writes captured images under the XDG data directory,
// one subdirectory per user.
type ScreenshotStorage struct {
	baseDir string
}

func NewScreenshotStorage() (*ScreenshotStorage, error) {
	baseDir, err := util.GetXDGDataDir()
	if err != nil {
		return nil, err
	}

	shotsDir := filepath.Join(baseDir, "screenshots")
	if err := os.MkdirAll(shotsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create screenshots directory: %w", err)
	}

	return &ScreenshotStorage{baseDir: shotsDir}, nil
}

// NewScreenshotStorageAt uses an explicit base directory instead of the
// XDG default.
func NewScreenshotStorageAt(dir string) (*ScreenshotStorage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create screenshots directory: %w", err)
	}
	return &ScreenshotStorage{baseDir: dir}, nil
}

func (s *ScreenshotStorage) Store(ctx context.Context, userID string, capturedAt time.Time, image []byte) (string, error) {
	userDir := filepath.Join(s.baseDir, userID)
	if err := os.MkdirAll(userDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create user directory: %w", err)
	}

	path := filepath.Join(userDir, capturedAt.UTC().Format("20060102T150405.000Z")+".png")
	if err := os.WriteFile(path, image, 0600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}

	return path, nil
}
