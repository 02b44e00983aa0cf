package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
)

// ReportStore is the persistence ExecutionReportWorkflow needs.
type ReportStore interface {
	MediaRecorder
	GetTodo(ctx context.Context, todoID uuid.UUID) (*models.Todo, error)
	GetReason(ctx context.Context, reasonID uuid.UUID) (*models.Reason, error)
	UpsertExecutionReport(ctx context.Context, report *models.ExecutionReport, resetReview bool) (*models.ExecutionReport, error)
	GetExecutionReportByTodo(ctx context.Context, todoID uuid.UUID) (*models.ExecutionReport, error)
	ListMediaByTodo(ctx context.Context, todoID uuid.UUID) ([]models.MediaItem, error)
	ReviewExecutionReport(ctx context.Context, reportID uuid.UUID, status string, comment sql.NullString, reviewer uuid.NullUUID, at time.Time) (*models.ExecutionReport, error)
}

type ReportSubmission struct {
	TodoID      uuid.UUID
	Status      string
	ReasonID    uuid.NullUUID
	Detail      string
	Files       []EvidenceFile
	SubmittedBy uuid.NullUUID
}

type ReportResult struct {
	Report  *models.ExecutionReport
	Uploads []EvidenceResult
}

// ExecutionReportWorkflow validates, stores and attaches evidence to the
// execution report of a to-do.
type ExecutionReportWorkflow struct {
	store       ReportStore
	uploader    EvidenceUploader
	resetReview bool
	logger      *zap.Logger

	// Now stamps submissions and reviews.
	Now func() time.Time
}

func NewExecutionReportWorkflow(store ReportStore, uploader EvidenceUploader, resetReview bool, logger *zap.Logger) *ExecutionReportWorkflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecutionReportWorkflow{
		store:       store,
		uploader:    uploader,
		resetReview: resetReview,
		logger:      logger,
		Now:         time.Now,
	}
}

// Validate applies the submission rules in order and returns the first
// violation. Reason and detail are normalised on success: an executed report
// carries neither, and detail is kept only for the Other reason.
func (w *ExecutionReportWorkflow) Validate(ctx context.Context, sub *ReportSubmission) error {
	if !models.ValidExecStatus(sub.Status) {
		return ErrInvalidStatus
	}

	if sub.Status == models.ExecStatusExecuted {
		sub.ReasonID = uuid.NullUUID{}
		sub.Detail = ""
	} else {
		if !sub.ReasonID.Valid || sub.ReasonID.UUID == uuid.Nil {
			return ErrReasonRequired
		}

		reason, err := w.store.GetReason(ctx, sub.ReasonID.UUID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return ErrInvalidReason
			}
			return fmt.Errorf("failed to look up reason: %w", err)
		}
		if !reason.Active {
			return ErrInvalidReason
		}

		sub.Detail = strings.TrimSpace(sub.Detail)
		if reason.RequiresDetail() {
			if sub.Detail == "" {
				return ErrDetailRequired
			}
		} else {
			sub.Detail = ""
		}
	}

	return ValidateEvidence(sub.Files)
}

// Submit stores the report for the to-do, replacing any earlier one, then
// uploads its evidence. Upload failures are reported per file and never fail
// the submission.
func (w *ExecutionReportWorkflow) Submit(ctx context.Context, sub ReportSubmission) (*ReportResult, error) {
	if err := w.Validate(ctx, &sub); err != nil {
		return nil, err
	}

	todo, err := w.store.GetTodo(ctx, sub.TodoID)
	if err != nil {
		return nil, err
	}

	now := w.Now().UTC()
	report := &models.ExecutionReport{
		ID:        uuid.New(),
		TodoID:    todo.ID,
		Status:    sub.Status,
		ReasonID:  sub.ReasonID,
		Detail:    sql.NullString{String: sub.Detail, Valid: sub.Detail != ""},
		CreatedBy: sub.SubmittedBy,
		CreatedAt: now,
	}

	stored, err := w.store.UpsertExecutionReport(ctx, report, w.resetReview)
	if err != nil {
		return nil, err
	}

	w.logger.Info("execution report submitted",
		zap.String("todo_id", todo.ID.String()),
		zap.String("report_id", stored.ID.String()),
		zap.String("status", stored.Status),
		zap.Int("files", len(sub.Files)),
	)

	owner := mediaOwner{projectID: todo.ProjectID, todoID: uuid.NullUUID{UUID: todo.ID, Valid: true}}
	uploads := attachEvidence(ctx, w.uploader, w.store, w.logger, owner, sub.Files, now)

	return &ReportResult{Report: stored, Uploads: uploads}, nil
}

// RetryUploads attaches files that failed on an earlier submission. The
// to-do must already have a report. Media uploaded since that report was
// filed count towards the evidence rules.
func (w *ExecutionReportWorkflow) RetryUploads(ctx context.Context, todoID uuid.UUID, files []EvidenceFile) ([]EvidenceResult, error) {
	todo, err := w.store.GetTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}
	report, err := w.store.GetExecutionReportByTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}

	existing, err := w.currentEvidence(ctx, report)
	if err != nil {
		return nil, err
	}
	if err := validateEvidence(existing, files); err != nil {
		return nil, err
	}

	owner := mediaOwner{projectID: todo.ProjectID, todoID: uuid.NullUUID{UUID: todo.ID, Valid: true}}
	return attachEvidence(ctx, w.uploader, w.store, w.logger, owner, files, w.Now().UTC()), nil
}

// currentEvidence is the to-do's media attached to report's submission.
// Evidence of earlier, replaced submissions stays on the to-do but is not
// counted.
func (w *ExecutionReportWorkflow) currentEvidence(ctx context.Context, report *models.ExecutionReport) ([]models.MediaItem, error) {
	media, err := w.store.ListMediaByTodo(ctx, report.TodoID)
	if err != nil {
		return nil, err
	}

	var current []models.MediaItem
	for _, item := range media {
		if !item.CreatedAt.Before(report.CreatedAt) {
			current = append(current, item)
		}
	}
	return current, nil
}

// Review records an approve/reject decision on a report.
func (w *ExecutionReportWorkflow) Review(ctx context.Context, reportID uuid.UUID, status, comment string, reviewer uuid.NullUUID) (*models.ExecutionReport, error) {
	if status != models.ReviewApproved && status != models.ReviewRejected {
		return nil, ErrInvalidReviewStatus
	}

	comment = strings.TrimSpace(comment)
	report, err := w.store.ReviewExecutionReport(ctx, reportID, status,
		sql.NullString{String: comment, Valid: comment != ""}, reviewer, w.Now().UTC())
	if err != nil {
		return nil, err
	}

	w.logger.Info("execution report reviewed",
		zap.String("report_id", reportID.String()),
		zap.String("review_status", status),
	)
	return report, nil
}
