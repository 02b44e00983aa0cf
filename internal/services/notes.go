package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
)

// NoteStore is the persistence NoteSubmissionWorkflow needs.
type NoteStore interface {
	MediaRecorder
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	GetTodo(ctx context.Context, todoID uuid.UUID) (*models.Todo, error)
	CreateDailyLog(ctx context.Context, entry *models.DailyLogEntry) error
	GetDailyLog(ctx context.Context, logID uuid.UUID) (*models.DailyLogEntry, error)
	ListMediaByLog(ctx context.Context, logID uuid.UUID) ([]models.MediaItem, error)
}

type NoteSubmission struct {
	ProjectID   uuid.UUID
	TodoID      uuid.NullUUID
	Title       string
	Comment     string
	Files       []EvidenceFile
	SubmittedBy uuid.NullUUID
}

type NoteResult struct {
	Entry   *models.DailyLogEntry
	Uploads []EvidenceResult
}

// NoteSubmissionWorkflow creates daily log notes with optional evidence.
type NoteSubmissionWorkflow struct {
	store    NoteStore
	uploader EvidenceUploader
	logger   *zap.Logger

	Now func() time.Time
}

func NewNoteSubmissionWorkflow(store NoteStore, uploader EvidenceUploader, logger *zap.Logger) *NoteSubmissionWorkflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteSubmissionWorkflow{store: store, uploader: uploader, logger: logger, Now: time.Now}
}

// Submit inserts the note, then uploads its files. The note is kept whatever
// happens to the uploads.
func (w *NoteSubmissionWorkflow) Submit(ctx context.Context, sub NoteSubmission) (*NoteResult, error) {
	comment := strings.TrimSpace(sub.Comment)
	if comment == "" {
		return nil, ErrCommentRequired
	}
	if err := ValidateEvidence(sub.Files); err != nil {
		return nil, err
	}

	if _, err := w.store.GetProject(ctx, sub.ProjectID); err != nil {
		return nil, err
	}
	if sub.TodoID.Valid {
		todo, err := w.store.GetTodo(ctx, sub.TodoID.UUID)
		if err != nil {
			return nil, err
		}
		if todo.ProjectID != sub.ProjectID {
			return nil, fmt.Errorf("todo %s is not part of project %s: %w", todo.ID, sub.ProjectID, models.ErrNotFound)
		}
	}

	now := w.Now().UTC()
	title := strings.TrimSpace(sub.Title)
	entry := &models.DailyLogEntry{
		ID:        uuid.New(),
		ProjectID: sub.ProjectID,
		TodoID:    sub.TodoID,
		Title:     sql.NullString{String: title, Valid: title != ""},
		Body:      comment,
		EntryType: models.EntryTypeNote,
		CreatedBy: sub.SubmittedBy,
		CreatedAt: now,
	}
	if err := w.store.CreateDailyLog(ctx, entry); err != nil {
		return nil, err
	}

	w.logger.Info("note created",
		zap.String("project_id", sub.ProjectID.String()),
		zap.String("log_id", entry.ID.String()),
		zap.Int("files", len(sub.Files)),
	)

	owner := mediaOwner{projectID: sub.ProjectID, logID: uuid.NullUUID{UUID: entry.ID, Valid: true}}
	uploads := attachEvidence(ctx, w.uploader, w.store, w.logger, owner, sub.Files, now)

	return &NoteResult{Entry: entry, Uploads: uploads}, nil
}

// RetryUploads attaches more files to an existing note. Media already on the
// note count towards the evidence rules.
func (w *NoteSubmissionWorkflow) RetryUploads(ctx context.Context, projectID, logID uuid.UUID, files []EvidenceFile) ([]EvidenceResult, error) {
	entry, err := w.store.GetDailyLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if entry.ProjectID != projectID {
		return nil, fmt.Errorf("note %s is not part of project %s: %w", logID, projectID, models.ErrNotFound)
	}

	existing, err := w.store.ListMediaByLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if err := validateEvidence(existing, files); err != nil {
		return nil, err
	}

	owner := mediaOwner{projectID: entry.ProjectID, logID: uuid.NullUUID{UUID: entry.ID, Valid: true}}
	return attachEvidence(ctx, w.uploader, w.store, w.logger, owner, files, w.Now().UTC()), nil
}
