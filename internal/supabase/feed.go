package supabase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

type feedRow struct {
	Kind          string         `db:"kind"`
	EntryID       uuid.UUID      `db:"entry_id"`
	ProjectID     uuid.UUID      `db:"project_id"`
	TodoID        uuid.NullUUID  `db:"todo_id"`
	EntryDate     dbTime         `db:"entry_date"`
	Title         sql.NullString `db:"title"`
	Body          sql.NullString `db:"body"`
	CreatedBy     uuid.NullUUID  `db:"created_by"`
	TodoTitle     sql.NullString `db:"todo_title"`
	Status        sql.NullString `db:"status"`
	Detail        sql.NullString `db:"detail"`
	ReasonLabel   sql.NullString `db:"reason_label"`
	ReviewStatus  sql.NullString `db:"review_status"`
	ReviewComment sql.NullString `db:"review_comment"`
	MediaCount    int            `db:"media_count"`
}

// ListFeedEntries reads v_daily_log_feed for one project with entry_date in
// [from, to), newest first with entry_id as the tie-break.
func (d *DatabaseClient) ListFeedEntries(ctx context.Context, projectID uuid.UUID, from, to time.Time) ([]models.FeedItem, error) {
	var rows []feedRow
	err := d.selectRows(ctx, &rows, `
		SELECT kind, entry_id, project_id, todo_id, entry_date, title, body, created_by,
			todo_title, status, detail, reason_label, review_status, review_comment, media_count
		FROM v_daily_log_feed
		WHERE project_id = ? AND entry_date >= ? AND entry_date < ?
		ORDER BY entry_date DESC, entry_id DESC
	`, projectID, ts(from), ts(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list feed for project %s: %w", projectID, err)
	}

	items := make([]models.FeedItem, len(rows))
	for i, row := range rows {
		items[i] = models.FeedItem{
			Kind:          row.Kind,
			EntryID:       row.EntryID,
			ProjectID:     row.ProjectID,
			TodoID:        row.TodoID,
			EntryDate:     row.EntryDate.Time,
			Title:         row.Title,
			Body:          row.Body,
			CreatedBy:     row.CreatedBy,
			TodoTitle:     row.TodoTitle,
			Status:        row.Status,
			Detail:        row.Detail,
			ReasonLabel:   row.ReasonLabel,
			ReviewStatus:  row.ReviewStatus,
			ReviewComment: row.ReviewComment,
			MediaCount:    row.MediaCount,
		}
	}
	return items, nil
}
