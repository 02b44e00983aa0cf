package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	KindNote            = "note"
	KindExecutionReport = "execution_report"
)

// FeedItem is one row of the merged daily log feed. It is derived from notes
// and execution reports and never stored.
type FeedItem struct {
	Kind          string
	EntryID       uuid.UUID
	ProjectID     uuid.UUID
	TodoID        uuid.NullUUID
	EntryDate     time.Time
	Title         sql.NullString
	Body          sql.NullString
	CreatedBy     uuid.NullUUID
	TodoTitle     sql.NullString
	Status        sql.NullString
	Detail        sql.NullString
	ReasonLabel   sql.NullString
	ReviewStatus  sql.NullString
	ReviewComment sql.NullString
	MediaCount    int
}

// StatusBadge is the display label for an execution report status.
func (f FeedItem) StatusBadge() string {
	if f.Kind != KindExecutionReport {
		return ""
	}
	switch f.Status.String {
	case ExecStatusExecuted:
		return "Executed"
	case ExecStatusPartial:
		return "Partially Executed"
	default:
		return "Not Executed"
	}
}

// TodoStatus is a to-do's standing on one calendar day. ExecStatus is empty
// when no report was filed that day.
type TodoStatus struct {
	TodoID       uuid.UUID
	TodoTitle    string
	DueDate      *Date
	ReportID     uuid.NullUUID
	ExecStatus   string
	ExecDetail   string
	ReasonLabel  string
	ReviewStatus string
	MediaCount   int
}

// Reported reports whether an execution report backs this status.
func (t TodoStatus) Reported() bool {
	return t.ReportID.Valid
}

// DaySummary groups one calendar day of the feed.
type DaySummary struct {
	Date               Date
	Notes              []FeedItem
	UncompletedTodos   []TodoStatus
	CompletedTodos     []TodoStatus
	MissingReportCount int
}

// Empty reports whether the day has nothing to show.
func (d DaySummary) Empty() bool {
	return len(d.Notes) == 0 &&
		len(d.UncompletedTodos) == 0 &&
		len(d.CompletedTodos) == 0 &&
		d.MissingReportCount == 0
}
