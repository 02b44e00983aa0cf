package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusOpen      = "open"
	ProjectStatusPending   = "pending"
	ProjectStatusCompleted = "completed"
)

const (
	TodoStatusIncomplete = "incomplete"
	TodoStatusInProgress = "in_progress"
	TodoStatusComplete   = "complete"
)

type Project struct {
	ID          uuid.UUID
	Name        string
	Status      string
	ExternalRef sql.NullString
	CreatedAt   time.Time
}

type Todo struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	Title      string
	Notes      sql.NullString
	Status     string
	Priority   string
	DueDate    *Date
	AssignedTo uuid.NullUUID
	CreatedBy  uuid.NullUUID
	CreatedAt  time.Time
}

// DueOn reports whether the to-do is due on or before day.
func (t Todo) DueOn(day Date) bool {
	return t.DueDate != nil && !t.DueDate.After(day)
}

type Reason struct {
	ID     uuid.UUID
	Label  string
	Active bool
}

// ReasonOther is the reason label that requires a free-text detail.
const ReasonOther = "Other"

// RequiresDetail reports whether reports citing this reason need a detail.
func (r Reason) RequiresDetail() bool {
	return r.Label == ReasonOther
}
