package services

import (
	"errors"
	"fmt"
)

// ValidationError rejects a request before anything is persisted. Two
// validation errors match under errors.Is when their codes are equal.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidStatus          = &ValidationError{Code: "invalid_status", Message: "status must be executed, partial or not_executed"}
	ErrReasonRequired         = &ValidationError{Code: "reason_required", Message: "a reason is required when the to-do was not fully executed"}
	ErrInvalidReason          = &ValidationError{Code: "invalid_reason", Message: "reason does not exist or is no longer active"}
	ErrDetailRequired         = &ValidationError{Code: "detail_required", Message: "detail is required when the reason is Other"}
	ErrTooManyFiles           = &ValidationError{Code: "too_many_files", Message: fmt.Sprintf("at most %d evidence files are allowed", MaxEvidenceFiles)}
	ErrInvalidFileCombination = &ValidationError{Code: "invalid_file_combination", Message: "attach up to two photos or a single video, not both"}
	ErrCommentRequired        = &ValidationError{Code: "comment_required", Message: "comment must not be empty"}
	ErrInvalidReviewStatus    = &ValidationError{Code: "invalid_review_status", Message: "review status must be approved or rejected"}
	ErrInvalidDateRange       = &ValidationError{Code: "invalid_date_range", Message: "from must not be after to"}
	ErrDateRangeTooLong       = &ValidationError{Code: "date_range_too_long", Message: fmt.Sprintf("a date range covers at most %d days", MaxRangeDays)}
)

// ErrFeedUnavailable wraps any failure while reading the feed. Callers get
// no partial feed.
var ErrFeedUnavailable = errors.New("feed unavailable")

func feedUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
}

const (
	UploadKindStorageUnavailable = "storage_unavailable"
	UploadKindQuotaExceeded      = "quota_exceeded"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrQuotaExceeded      = errors.New("storage quota exceeded")
)

// UploadError describes why one evidence file was not stored. It travels in
// upload results and is never returned from a submission.
type UploadError struct {
	Kind     string
	Attempts int
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

func (e *UploadError) Unwrap() []error {
	return []error{e.sentinel(), e.Err}
}

func (e *UploadError) sentinel() error {
	if e.Kind == UploadKindQuotaExceeded {
		return ErrQuotaExceeded
	}
	return ErrStorageUnavailable
}
