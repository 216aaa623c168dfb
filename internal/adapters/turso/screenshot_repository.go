package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/workwatchhq/agent/internal/domain"
)

type ScreenshotRepository struct {
	db *sql.DB
}

func NewScreenshotRepository(db *sql.DB) *ScreenshotRepository {
	return &ScreenshotRepository{db: db}
}

func (r *ScreenshotRepository) Create(ctx context.Context, s *domain.Screenshot) error {
	onDemand := 0
	if s.OnDemand {
		onDemand = 1
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO screenshots (
			id, user_id, captured_at, stored_path, size_bytes, on_demand
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		s.ID,
		s.UserID,
		s.CapturedAt.Format(timeFormat),
		s.StoredPath,
		s.SizeBytes,
		onDemand,
	)
	if err != nil {
		return fmt.Errorf("insert screenshot: %w", err)
	}
	return nil
}
