package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by the data layer when a row does not exist.
var ErrNotFound = errors.New("not found")

const EntryTypeNote = "note"

// DailyLogEntry is a free-text note on a project's daily log.
type DailyLogEntry struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	TodoID    uuid.NullUUID
	Title     sql.NullString
	Body      string
	EntryType string
	CreatedBy uuid.NullUUID
	CreatedAt time.Time
}

const (
	ExecStatusExecuted    = "executed"
	ExecStatusPartial     = "partial"
	ExecStatusNotExecuted = "not_executed"
)

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// ValidExecStatus reports whether status is one of the execution statuses.
func ValidExecStatus(status string) bool {
	switch status {
	case ExecStatusExecuted, ExecStatusPartial, ExecStatusNotExecuted:
		return true
	}
	return false
}

// ExecutionReport answers "was this to-do done today". There is at most one
// per to-do.
type ExecutionReport struct {
	ID            uuid.UUID
	TodoID        uuid.UUID
	Status        string
	ReasonID      uuid.NullUUID
	Detail        sql.NullString
	CreatedBy     uuid.NullUUID
	CreatedAt     time.Time
	ReviewStatus  string
	ReviewComment sql.NullString
	ReviewedBy    uuid.NullUUID
	ReviewedAt    sql.NullTime
}

const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

// MediaItem records one uploaded evidence file. Exactly one of LogID and
// TodoID is set.
type MediaItem struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	LogID     uuid.NullUUID
	TodoID    uuid.NullUUID
	URL       string // storage path, not the public URL
	Type      string
	CreatedAt time.Time
}
