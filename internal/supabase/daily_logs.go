package supabase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

type dailyLogRow struct {
	ID        uuid.UUID      `db:"id"`
	ProjectID uuid.UUID      `db:"project_id"`
	TodoID    uuid.NullUUID  `db:"todo_id"`
	Title     sql.NullString `db:"title"`
	Body      sql.NullString `db:"body"`
	EntryType string         `db:"entry_type"`
	CreatedBy uuid.NullUUID  `db:"created_by"`
	CreatedAt dbTime         `db:"created_at"`
}

func (d *DatabaseClient) CreateDailyLog(ctx context.Context, entry *models.DailyLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.EntryType == "" {
		entry.EntryType = models.EntryTypeNote
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := d.exec(ctx, `
		INSERT INTO daily_logs (id, project_id, todo_id, title, body, entry_type, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.ProjectID, entry.TodoID, entry.Title, entry.Body, entry.EntryType, entry.CreatedBy, ts(entry.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create daily log: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetDailyLog(ctx context.Context, logID uuid.UUID) (*models.DailyLogEntry, error) {
	var row dailyLogRow
	err := d.get(ctx, &row, `
		SELECT id, project_id, todo_id, title, body, entry_type, created_by, created_at
		FROM daily_logs
		WHERE id = ?
	`, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily log %s: %w", logID, err)
	}

	return &models.DailyLogEntry{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		TodoID:    row.TodoID,
		Title:     row.Title,
		Body:      row.Body.String,
		EntryType: row.EntryType,
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt.Time,
	}, nil
}
