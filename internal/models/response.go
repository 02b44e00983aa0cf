package models

import "time"

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	ExternalRef string    `json:"external_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type TodoResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	DueDate    *Date     `json:"due_date,omitempty" swaggertype:"string"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

type ReasonResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type ReasonListResponse struct {
	Reasons []ReasonResponse `json:"reasons"`
}

type FeedItemResponse struct {
	Kind          string    `json:"kind"`
	EntryID       string    `json:"entry_id"`
	TodoID        string    `json:"todo_id,omitempty"`
	EntryDate     time.Time `json:"entry_date"`
	Title         string    `json:"title,omitempty"`
	Body          string    `json:"body,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	TodoTitle     string    `json:"todo_title,omitempty"`
	Status        string    `json:"status,omitempty"`
	StatusBadge   string    `json:"status_badge,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	ReasonLabel   string    `json:"reason_label,omitempty"`
	ReviewStatus  string    `json:"review_status,omitempty"`
	ReviewComment string    `json:"review_comment,omitempty"`
	MediaCount    int       `json:"media_count"`
}

type FeedResponse struct {
	Items   []FeedItemResponse `json:"items"`
	HasMore bool               `json:"has_more"`
}

type TodoStatusResponse struct {
	TodoID       string `json:"todo_id"`
	TodoTitle    string `json:"todo_title"`
	DueDate      *Date  `json:"due_date,omitempty" swaggertype:"string"`
	Reported     bool   `json:"reported"`
	ReportID     string `json:"report_id,omitempty"`
	ExecStatus   string `json:"exec_status,omitempty"`
	ExecDetail   string `json:"exec_detail,omitempty"`
	ReasonLabel  string `json:"reason_label,omitempty"`
	ReviewStatus string `json:"review_status,omitempty"`
	MediaCount   int    `json:"media_count"`
}

type DaySummaryResponse struct {
	Date           string               `json:"date"`
	MissingReports int                  `json:"missing_reports"`
	Notes          []FeedItemResponse   `json:"notes"`
	Uncompleted    []TodoStatusResponse `json:"uncompleted"`
	Completed      []TodoStatusResponse `json:"completed"`
}

type DaysResponse struct {
	Days []DaySummaryResponse `json:"days"`
}

type MediaResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type MediaListResponse struct {
	Media []MediaResponse `json:"media"`
}

type UploadResultResponse struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
	Success  bool   `json:"success"`
	MediaID  string `json:"media_id,omitempty"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"error_kind,omitempty"`
}

type NoteResponse struct {
	LogID         string                 `json:"log_id"`
	Uploaded      int                    `json:"uploaded"`
	Failed        int                    `json:"failed"`
	UploadResults []UploadResultResponse `json:"upload_results"`
}

type ExecutionReportResponse struct {
	ID            string                 `json:"id"`
	TodoID        string                 `json:"todo_id"`
	Status        string                 `json:"status"`
	ReasonID      string                 `json:"reason_id,omitempty"`
	Detail        string                 `json:"detail,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	ReviewStatus  string                 `json:"review_status"`
	ReviewComment string                 `json:"review_comment,omitempty"`
	Uploaded      int                    `json:"uploaded"`
	Failed        int                    `json:"failed"`
	UploadResults []UploadResultResponse `json:"upload_results"`
}

type UploadRetryResponse struct {
	Uploaded      int                    `json:"uploaded"`
	Failed        int                    `json:"failed"`
	UploadResults []UploadResultResponse `json:"upload_results"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
