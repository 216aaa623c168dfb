package ports

import (
	"context"
	"time"
)

// ScreenshotStore is the blob side of screenshot persistence: it takes
// raw image bytes and returns where they ended up.
type ScreenshotStore interface {
	Store(ctx context.Context, userID string, capturedAt time.Time, image []byte) (string, error)
}
