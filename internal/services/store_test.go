package services_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

// memStore is an in-memory stand-in for the database client. Its feed is
// derived from notes and reports the same way the feed view is.
type memStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project
	todos    map[uuid.UUID]models.Todo
	reasons  map[uuid.UUID]models.Reason
	logs     map[uuid.UUID]models.DailyLogEntry
	reports  map[uuid.UUID]models.ExecutionReport // by todo
	media    []models.MediaItem

	feedErr  error
	mediaErr error
}

func newMemStore() *memStore {
	return &memStore{
		projects: make(map[uuid.UUID]models.Project),
		todos:    make(map[uuid.UUID]models.Todo),
		reasons:  make(map[uuid.UUID]models.Reason),
		logs:     make(map[uuid.UUID]models.DailyLogEntry),
		reports:  make(map[uuid.UUID]models.ExecutionReport),
	}
}

func (s *memStore) addProject(name string) models.Project {
	p := models.Project{ID: uuid.New(), Name: name, Status: models.ProjectStatusOpen, CreatedAt: time.Now()}
	s.projects[p.ID] = p
	return p
}

func (s *memStore) addTodo(projectID uuid.UUID, title string, due *models.Date) models.Todo {
	t := models.Todo{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     title,
		Status:    models.TodoStatusIncomplete,
		Priority:  "none",
		DueDate:   due,
		CreatedAt: time.Now(),
	}
	s.todos[t.ID] = t
	return t
}

func (s *memStore) addReason(label string, active bool) models.Reason {
	r := models.Reason{ID: uuid.New(), Label: label, Active: active}
	s.reasons[r.ID] = r
	return r
}

func (s *memStore) addNote(projectID uuid.UUID, body string, at time.Time, author uuid.NullUUID) models.DailyLogEntry {
	e := models.DailyLogEntry{
		ID:        uuid.New(),
		ProjectID: projectID,
		Body:      body,
		EntryType: models.EntryTypeNote,
		CreatedBy: author,
		CreatedAt: at,
	}
	s.logs[e.ID] = e
	return e
}

func (s *memStore) addReport(todoID uuid.UUID, status string, at time.Time) models.ExecutionReport {
	r := models.ExecutionReport{
		ID:           uuid.New(),
		TodoID:       todoID,
		Status:       status,
		CreatedAt:    at,
		ReviewStatus: models.ReviewPending,
	}
	s.reports[todoID] = r
	return r
}

func (s *memStore) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (s *memStore) GetTodo(ctx context.Context, todoID uuid.UUID) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[todoID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &t, nil
}

func (s *memStore) GetReason(ctx context.Context, reasonID uuid.UUID) (*models.Reason, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reasons[reasonID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) CreateDailyLog(ctx context.Context, entry *models.DailyLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[entry.ID] = *entry
	return nil
}

func (s *memStore) GetDailyLog(ctx context.Context, logID uuid.UUID) (*models.DailyLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.logs[logID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &e, nil
}

func (s *memStore) UpsertExecutionReport(ctx context.Context, report *models.ExecutionReport, resetReview bool) (*models.ExecutionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *report
	stored.ReviewStatus = models.ReviewPending
	if prev, ok := s.reports[report.TodoID]; ok {
		stored.ID = prev.ID
		if !resetReview {
			stored.ReviewStatus = prev.ReviewStatus
			stored.ReviewComment = prev.ReviewComment
			stored.ReviewedBy = prev.ReviewedBy
			stored.ReviewedAt = prev.ReviewedAt
		}
	}
	s.reports[report.TodoID] = stored
	return &stored, nil
}

func (s *memStore) GetExecutionReport(ctx context.Context, reportID uuid.UUID) (*models.ExecutionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.ID == reportID {
			return &r, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memStore) GetExecutionReportByTodo(ctx context.Context, todoID uuid.UUID) (*models.ExecutionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[todoID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) ReviewExecutionReport(ctx context.Context, reportID uuid.UUID, status string, comment sql.NullString, reviewer uuid.NullUUID, at time.Time) (*models.ExecutionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for todoID, r := range s.reports {
		if r.ID != reportID {
			continue
		}
		r.ReviewStatus = status
		r.ReviewComment = comment
		r.ReviewedBy = reviewer
		r.ReviewedAt = sql.NullTime{Time: at, Valid: true}
		s.reports[todoID] = r
		return &r, nil
	}
	return nil, models.ErrNotFound
}

func (s *memStore) CreateMediaItem(ctx context.Context, item *models.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mediaErr != nil {
		return s.mediaErr
	}
	item.ID = uuid.New()
	s.media = append(s.media, *item)
	return nil
}

func (s *memStore) ListMediaByLog(ctx context.Context, logID uuid.UUID) ([]models.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.MediaItem
	for _, m := range s.media {
		if m.LogID.Valid && m.LogID.UUID == logID {
			items = append(items, m)
		}
	}
	return items, nil
}

func (s *memStore) ListMediaByTodo(ctx context.Context, todoID uuid.UUID) ([]models.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.MediaItem
	for _, m := range s.media {
		if m.TodoID.Valid && m.TodoID.UUID == todoID {
			items = append(items, m)
		}
	}
	return items, nil
}

func (s *memStore) ListDueTodos(ctx context.Context, projectID uuid.UUID, until models.Date) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedErr != nil {
		return nil, s.feedErr
	}
	var todos []models.Todo
	for _, t := range s.todos {
		if t.ProjectID == projectID && t.Status == models.TodoStatusIncomplete && t.DueOn(until) {
			todos = append(todos, t)
		}
	}
	return todos, nil
}

func (s *memStore) ListFeedEntries(ctx context.Context, projectID uuid.UUID, from, to time.Time) ([]models.FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedErr != nil {
		return nil, s.feedErr
	}

	inRange := func(t time.Time) bool { return !t.Before(from) && t.Before(to) }
	var items []models.FeedItem
	for _, e := range s.logs {
		if e.ProjectID != projectID || !inRange(e.CreatedAt) {
			continue
		}
		item := models.FeedItem{
			Kind:      models.KindNote,
			EntryID:   e.ID,
			ProjectID: e.ProjectID,
			TodoID:    e.TodoID,
			EntryDate: e.CreatedAt,
			Title:     e.Title,
			Body:      sql.NullString{String: e.Body, Valid: true},
			CreatedBy: e.CreatedBy,
		}
		if e.TodoID.Valid {
			item.TodoTitle = sql.NullString{String: s.todos[e.TodoID.UUID].Title, Valid: true}
		}
		items = append(items, item)
	}
	for _, r := range s.reports {
		todo := s.todos[r.TodoID]
		if todo.ProjectID != projectID || !inRange(r.CreatedAt) {
			continue
		}
		item := models.FeedItem{
			Kind:         models.KindExecutionReport,
			EntryID:      r.ID,
			ProjectID:    todo.ProjectID,
			TodoID:       uuid.NullUUID{UUID: r.TodoID, Valid: true},
			EntryDate:    r.CreatedAt,
			CreatedBy:    r.CreatedBy,
			TodoTitle:    sql.NullString{String: todo.Title, Valid: true},
			Status:       sql.NullString{String: r.Status, Valid: true},
			Detail:       r.Detail,
			ReviewStatus: sql.NullString{String: r.ReviewStatus, Valid: true},
		}
		if r.ReasonID.Valid {
			item.ReasonLabel = sql.NullString{String: s.reasons[r.ReasonID.UUID].Label, Valid: true}
		}
		items = append(items, item)
	}
	return items, nil
}

func date(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *models.Date {
	d := date(s)
	return &d
}

// at returns the given day at hour:00 UTC.
func at(day string, hour int) time.Time {
	return date(day).In(time.UTC).Add(time.Duration(hour) * time.Hour)
}
