package supabase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

type executionReportRow struct {
	ID            uuid.UUID      `db:"id"`
	TodoID        uuid.UUID      `db:"todo_id"`
	Status        string         `db:"status"`
	ReasonID      uuid.NullUUID  `db:"reason_id"`
	Detail        sql.NullString `db:"detail"`
	CreatedBy     uuid.NullUUID  `db:"created_by"`
	CreatedAt     dbTime         `db:"created_at"`
	ReviewStatus  string         `db:"review_status"`
	ReviewComment sql.NullString `db:"review_comment"`
	ReviewedBy    uuid.NullUUID  `db:"reviewed_by"`
	ReviewedAt    dbTime         `db:"reviewed_at"`
}

func (r executionReportRow) model() *models.ExecutionReport {
	return &models.ExecutionReport{
		ID:            r.ID,
		TodoID:        r.TodoID,
		Status:        r.Status,
		ReasonID:      r.ReasonID,
		Detail:        r.Detail,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt.Time,
		ReviewStatus:  r.ReviewStatus,
		ReviewComment: r.ReviewComment,
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt.NullTime(),
	}
}

const executionReportColumns = `id, todo_id, status, reason_id, detail, created_by, created_at,
	review_status, review_comment, reviewed_by, reviewed_at`

const upsertExecutionReport = `
	INSERT INTO execution_reports (id, todo_id, status, reason_id, detail, created_by, created_at, review_status)
	VALUES (?, ?, ?, ?, ?, ?, ?, 'pending')
	ON CONFLICT (todo_id) DO UPDATE SET
		status = excluded.status,
		reason_id = excluded.reason_id,
		detail = excluded.detail,
		created_by = excluded.created_by,
		created_at = excluded.created_at`

const resetReviewFields = `,
		review_status = 'pending',
		review_comment = NULL,
		reviewed_by = NULL,
		reviewed_at = NULL`

// UpsertExecutionReport stores the report for its to-do, replacing any earlier
// submission. The row keeps its original id. Review fields survive unless
// resetReview is set. The stored row is returned.
func (d *DatabaseClient) UpsertExecutionReport(ctx context.Context, report *models.ExecutionReport, resetReview bool) (*models.ExecutionReport, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	query := upsertExecutionReport
	if resetReview {
		query += resetReviewFields
	}
	query += `
	RETURNING ` + executionReportColumns

	var row executionReportRow
	err := d.get(ctx, &row, query,
		report.ID, report.TodoID, report.Status, report.ReasonID, report.Detail, report.CreatedBy, ts(report.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert execution report for todo %s: %w", report.TodoID, err)
	}
	return row.model(), nil
}

func (d *DatabaseClient) GetExecutionReport(ctx context.Context, reportID uuid.UUID) (*models.ExecutionReport, error) {
	var row executionReportRow
	if err := d.get(ctx, &row, `SELECT `+executionReportColumns+` FROM execution_reports WHERE id = ?`, reportID); err != nil {
		return nil, fmt.Errorf("failed to get execution report %s: %w", reportID, err)
	}
	return row.model(), nil
}

func (d *DatabaseClient) GetExecutionReportByTodo(ctx context.Context, todoID uuid.UUID) (*models.ExecutionReport, error) {
	var row executionReportRow
	if err := d.get(ctx, &row, `SELECT `+executionReportColumns+` FROM execution_reports WHERE todo_id = ?`, todoID); err != nil {
		return nil, fmt.Errorf("failed to get execution report for todo %s: %w", todoID, err)
	}
	return row.model(), nil
}

func (d *DatabaseClient) ReviewExecutionReport(ctx context.Context, reportID uuid.UUID, status string, comment sql.NullString, reviewer uuid.NullUUID, at time.Time) (*models.ExecutionReport, error) {
	var row executionReportRow
	err := d.get(ctx, &row, `
		UPDATE execution_reports
		SET review_status = ?, review_comment = ?, reviewed_by = ?, reviewed_at = ?
		WHERE id = ?
		RETURNING `+executionReportColumns,
		status, comment, reviewer, ts(at), reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to review execution report %s: %w", reportID, err)
	}
	return row.model(), nil
}
