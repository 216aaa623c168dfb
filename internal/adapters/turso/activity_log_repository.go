package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/workwatchhq/agent/internal/domain"
	"github.com/workwatchhq/agent/internal/util"
)

type ActivityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, entry *domain.ActivityLogEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_logs (
			user_id, timestamp, app_name, window_title, url,
			app_category, site_category
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.UserID,
		entry.Timestamp.Format(timeFormat),
		entry.AppName,
		entry.WindowTitle,
		util.NullString(entry.URL),
		string(entry.AppCategory),
		util.NullString(string(entry.SiteCategory)),
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}
