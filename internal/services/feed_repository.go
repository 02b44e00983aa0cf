package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
)

// FeedStore is the persistence the feed reads from.
type FeedStore interface {
	ListFeedEntries(ctx context.Context, projectID uuid.UUID, from, to time.Time) ([]models.FeedItem, error)
	ListDueTodos(ctx context.Context, projectID uuid.UUID, until models.Date) ([]models.Todo, error)
	GetDailyLog(ctx context.Context, logID uuid.UUID) (*models.DailyLogEntry, error)
	GetExecutionReport(ctx context.Context, reportID uuid.UUID) (*models.ExecutionReport, error)
	GetTodo(ctx context.Context, todoID uuid.UUID) (*models.Todo, error)
	ListMediaByLog(ctx context.Context, logID uuid.UUID) ([]models.MediaItem, error)
	ListMediaByTodo(ctx context.Context, todoID uuid.UUID) ([]models.MediaItem, error)
}

// URLResolver turns a stored media path into a public URL.
type URLResolver interface {
	PublicURL(path string) string
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From models.Date
	To   models.Date
}

// SingleDay is the range covering only day.
func SingleDay(day models.Date) DateRange {
	return DateRange{From: day, To: day}
}

// MaxRangeDays bounds the days a feed or aggregation request may span.
const MaxRangeDays = 366

func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() || r.From.After(r.To) {
		return ErrInvalidDateRange
	}
	if r.From.AddDays(MaxRangeDays - 1).Before(r.To) {
		return ErrDateRangeTooLong
	}
	return nil
}

// Days lists every day in the range, oldest first.
func (r DateRange) Days() []models.Date {
	var days []models.Date
	for d := r.From; !d.After(r.To); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// bounds converts the range to [start, end) instants in loc.
func (r DateRange) bounds(loc *time.Location) (time.Time, time.Time) {
	return r.From.In(loc), r.To.AddDays(1).In(loc)
}

// FeedFilter narrows a feed. Search is a case-insensitive substring match on
// title, body or linked to-do title; Author and Kind match exactly.
type FeedFilter struct {
	Search string
	Author uuid.NullUUID
	Kind   string
}

func (f FeedFilter) matches(item models.FeedItem) bool {
	if f.Kind != "" && item.Kind != f.Kind {
		return false
	}
	if f.Author.Valid && (!item.CreatedBy.Valid || item.CreatedBy.UUID != f.Author.UUID) {
		return false
	}
	if needle := strings.ToLower(strings.TrimSpace(f.Search)); needle != "" {
		return strings.Contains(strings.ToLower(item.Title.String), needle) ||
			strings.Contains(strings.ToLower(item.Body.String), needle) ||
			strings.Contains(strings.ToLower(item.TodoTitle.String), needle)
	}
	return true
}

// FeedPage selects a window of a filtered feed.
type FeedPage struct {
	Limit  int
	Offset int
}

// MediaView is a media item with its public URL.
type MediaView struct {
	Item models.MediaItem
	URL  string
}

// FeedRepository merges notes and execution reports into one project feed.
type FeedRepository struct {
	store  FeedStore
	urls   URLResolver
	loc    *time.Location
	logger *zap.Logger
}

func NewFeedRepository(store FeedStore, urls URLResolver, loc *time.Location, logger *zap.Logger) *FeedRepository {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedRepository{store: store, urls: urls, loc: loc, logger: logger}
}

// Location is the zone that defines calendar days.
func (r *FeedRepository) Location() *time.Location {
	return r.loc
}

// Today is the current calendar day in the feed's zone.
func (r *FeedRepository) Today() models.Date {
	return models.DateOf(time.Now().In(r.loc))
}

// ListFeed returns the project's notes and execution reports dated within
// rng, newest first, narrowed by filter.
func (r *FeedRepository) ListFeed(ctx context.Context, projectID uuid.UUID, rng DateRange, filter FeedFilter) ([]models.FeedItem, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	from, to := rng.bounds(r.loc)
	entries, err := r.store.ListFeedEntries(ctx, projectID, from, to)
	if err != nil {
		r.logger.Error("failed to load feed",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
		return nil, feedUnavailable(err)
	}

	items := make([]models.FeedItem, 0, len(entries))
	for _, item := range entries {
		if filter.matches(item) {
			items = append(items, item)
		}
	}
	sortNewestFirst(items)

	return items, nil
}

// ListFeedPage is ListFeed with limit/offset applied after filtering.
func (r *FeedRepository) ListFeedPage(ctx context.Context, projectID uuid.UUID, rng DateRange, filter FeedFilter, page FeedPage) ([]models.FeedItem, bool, error) {
	items, err := r.ListFeed(ctx, projectID, rng, filter)
	if err != nil {
		return nil, false, err
	}

	if page.Offset < 0 {
		page.Offset = 0
	}
	if page.Offset >= len(items) {
		return []models.FeedItem{}, false, nil
	}
	items = items[page.Offset:]
	if page.Limit <= 0 || page.Limit >= len(items) {
		return items, false, nil
	}
	return items[:page.Limit], true, nil
}

// ListDueTodos returns incomplete to-dos due on or before until. These are
// the candidates for missing reports; they are not feed items.
func (r *FeedRepository) ListDueTodos(ctx context.Context, projectID uuid.UUID, until models.Date) ([]models.Todo, error) {
	todos, err := r.store.ListDueTodos(ctx, projectID, until)
	if err != nil {
		r.logger.Error("failed to load due todos",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
		return nil, feedUnavailable(err)
	}
	return todos, nil
}

// ListMedia returns the evidence attached to a feed entry. Notes own their
// media by log id; execution reports share the media of their to-do.
func (r *FeedRepository) ListMedia(ctx context.Context, projectID uuid.UUID, kind string, entryID uuid.UUID) ([]MediaView, error) {
	var (
		items []models.MediaItem
		err   error
	)

	switch kind {
	case models.KindNote:
		entry, getErr := r.store.GetDailyLog(ctx, entryID)
		if getErr != nil {
			return nil, getErr
		}
		if entry.ProjectID != projectID {
			return nil, fmt.Errorf("note %s: %w", entryID, models.ErrNotFound)
		}
		items, err = r.store.ListMediaByLog(ctx, entryID)
	case models.KindExecutionReport:
		report, getErr := r.store.GetExecutionReport(ctx, entryID)
		if getErr != nil {
			return nil, getErr
		}
		todo, getErr := r.store.GetTodo(ctx, report.TodoID)
		if getErr != nil {
			return nil, getErr
		}
		if todo.ProjectID != projectID {
			return nil, fmt.Errorf("execution report %s: %w", entryID, models.ErrNotFound)
		}
		items, err = r.store.ListMediaByTodo(ctx, report.TodoID)
	default:
		return nil, fmt.Errorf("feed kind %q: %w", kind, models.ErrNotFound)
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, feedUnavailable(err)
	}

	views := make([]MediaView, len(items))
	for i, item := range items {
		views[i] = MediaView{Item: item, URL: r.urls.PublicURL(item.URL)}
	}
	return views, nil
}

func sortNewestFirst(items []models.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].EntryDate.Equal(items[j].EntryDate) {
			return items[i].EntryDate.After(items[j].EntryDate)
		}
		return bytes.Compare(items[i].EntryID[:], items[j].EntryID[:]) > 0
	})
}
