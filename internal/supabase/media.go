package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

type mediaRow struct {
	ID        uuid.UUID     `db:"id"`
	ProjectID uuid.UUID     `db:"project_id"`
	LogID     uuid.NullUUID `db:"log_id"`
	TodoID    uuid.NullUUID `db:"todo_id"`
	URL       string        `db:"url"`
	Type      string        `db:"type"`
	CreatedAt dbTime        `db:"created_at"`
}

const mediaColumns = `id, project_id, log_id, todo_id, url, type, created_at`

func (d *DatabaseClient) CreateMediaItem(ctx context.Context, item *models.MediaItem) error {
	if item.LogID.Valid == item.TodoID.Valid {
		return fmt.Errorf("media item must belong to exactly one of a log or a todo")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := d.exec(ctx, `
		INSERT INTO media (id, project_id, log_id, todo_id, url, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.ProjectID, item.LogID, item.TodoID, item.URL, item.Type, ts(item.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create media item: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListMediaByLog(ctx context.Context, logID uuid.UUID) ([]models.MediaItem, error) {
	return d.listMedia(ctx, `SELECT `+mediaColumns+` FROM media WHERE log_id = ? ORDER BY created_at, id`, logID)
}

func (d *DatabaseClient) ListMediaByTodo(ctx context.Context, todoID uuid.UUID) ([]models.MediaItem, error) {
	return d.listMedia(ctx, `SELECT `+mediaColumns+` FROM media WHERE todo_id = ? ORDER BY created_at, id`, todoID)
}

func (d *DatabaseClient) listMedia(ctx context.Context, query string, args ...interface{}) ([]models.MediaItem, error) {
	var rows []mediaRow
	if err := d.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	items := make([]models.MediaItem, len(rows))
	for i, row := range rows {
		items[i] = models.MediaItem{
			ID:        row.ID,
			ProjectID: row.ProjectID,
			LogID:     row.LogID,
			TodoID:    row.TodoID,
			URL:       row.URL,
			Type:      row.Type,
			CreatedAt: row.CreatedAt.Time,
		}
	}
	return items, nil
}
