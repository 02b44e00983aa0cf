package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

func newTestFeed(store *memStore) *services.FeedRepository {
	return services.NewFeedRepository(store, newFakeBlobs(), time.UTC, zap.NewNop())
}

func TestDateRange(t *testing.T) {
	rng := services.DateRange{From: date("2024-02-28"), To: date("2024-03-01")}
	require.NoError(t, rng.Validate())
	assert.Equal(t, []models.Date{date("2024-02-28"), date("2024-02-29"), date("2024-03-01")}, rng.Days())

	assert.ErrorIs(t, services.DateRange{From: date("2024-03-02"), To: date("2024-03-01")}.Validate(), services.ErrInvalidDateRange)
	assert.ErrorIs(t, services.DateRange{To: date("2024-03-01")}.Validate(), services.ErrInvalidDateRange)

	year := services.DateRange{From: date("2024-01-01"), To: date("2024-12-31")}
	require.NoError(t, year.Validate())
	assert.Len(t, year.Days(), services.MaxRangeDays)
	assert.ErrorIs(t, services.DateRange{From: date("2024-01-01"), To: date("2025-01-01")}.Validate(), services.ErrDateRangeTooLong)
	assert.ErrorIs(t, services.DateRange{From: date("0001-01-01"), To: date("2024-03-01")}.Validate(), services.ErrDateRangeTooLong)
}

func TestFeedRepository_ListFeedMergesNewestFirst(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	other := store.addProject("Tower B")
	todo := store.addTodo(project.ID, "Pour slab", datePtr("2024-07-01"))

	n1 := store.addNote(project.ID, "Crew arrived", at("2024-07-01", 8), uuid.NullUUID{})
	r1 := store.addReport(todo.ID, models.ExecStatusPartial, at("2024-07-01", 17))
	n2 := store.addNote(project.ID, "Rain in the morning", at("2024-07-02", 9), uuid.NullUUID{})
	store.addNote(project.ID, "Outside the range", at("2024-07-04", 9), uuid.NullUUID{})
	store.addNote(other.ID, "Other project", at("2024-07-01", 10), uuid.NullUUID{})

	feed := newTestFeed(store)
	items, err := feed.ListFeed(context.Background(), project.ID,
		services.DateRange{From: date("2024-07-01"), To: date("2024-07-03")}, services.FeedFilter{})
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, n2.ID, items[0].EntryID)
	assert.Equal(t, r1.ID, items[1].EntryID)
	assert.Equal(t, models.KindExecutionReport, items[1].Kind)
	assert.Equal(t, "Partially Executed", items[1].StatusBadge())
	assert.Equal(t, n1.ID, items[2].EntryID)
}

func TestFeedRepository_Filters(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	todo := store.addTodo(project.ID, "Install formwork", datePtr("2024-07-01"))
	author := uuid.NullUUID{UUID: uuid.New(), Valid: true}

	mine := store.addNote(project.ID, "Concrete truck late", at("2024-07-01", 8), author)
	store.addNote(project.ID, "Site inspection", at("2024-07-01", 9), uuid.NullUUID{})
	report := store.addReport(todo.ID, models.ExecStatusExecuted, at("2024-07-01", 10))

	feed := newTestFeed(store)
	rng := services.SingleDay(date("2024-07-01"))
	ctx := context.Background()

	items, err := feed.ListFeed(ctx, project.ID, rng, services.FeedFilter{Search: "CONCRETE"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].EntryID)

	// Search also matches the linked to-do title.
	items, err = feed.ListFeed(ctx, project.ID, rng, services.FeedFilter{Search: "formwork"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, report.ID, items[0].EntryID)

	items, err = feed.ListFeed(ctx, project.ID, rng, services.FeedFilter{Author: author})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].EntryID)

	items, err = feed.ListFeed(ctx, project.ID, rng, services.FeedFilter{Kind: models.KindNote})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFeedRepository_ListFeedPage(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	for hour := 1; hour <= 5; hour++ {
		store.addNote(project.ID, "note", at("2024-07-01", hour), uuid.NullUUID{})
	}

	feed := newTestFeed(store)
	rng := services.SingleDay(date("2024-07-01"))
	ctx := context.Background()

	items, more, err := feed.ListFeedPage(ctx, project.ID, rng, services.FeedFilter{}, services.FeedPage{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, more)
	assert.Equal(t, at("2024-07-01", 5), items[0].EntryDate)

	items, more, err = feed.ListFeedPage(ctx, project.ID, rng, services.FeedFilter{}, services.FeedPage{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.False(t, more)

	items, more, err = feed.ListFeedPage(ctx, project.ID, rng, services.FeedFilter{}, services.FeedPage{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, more)
}

func TestFeedRepository_Unavailable(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	store.feedErr = errors.New("connection refused")

	feed := newTestFeed(store)
	_, err := feed.ListFeed(context.Background(), project.ID, services.SingleDay(date("2024-07-01")), services.FeedFilter{})

	assert.ErrorIs(t, err, services.ErrFeedUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFeedRepository_InvalidRange(t *testing.T) {
	feed := newTestFeed(newMemStore())
	_, err := feed.ListFeed(context.Background(), uuid.New(),
		services.DateRange{From: date("2024-07-02"), To: date("2024-07-01")}, services.FeedFilter{})
	assert.ErrorIs(t, err, services.ErrInvalidDateRange)
}

func TestFeedRepository_ListMedia(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	todo := store.addTodo(project.ID, "Pour slab", nil)
	note := store.addNote(project.ID, "Photos attached", at("2024-07-01", 8), uuid.NullUUID{})
	report := store.addReport(todo.ID, models.ExecStatusExecuted, at("2024-07-01", 9))

	ctx := context.Background()
	require.NoError(t, store.CreateMediaItem(ctx, &models.MediaItem{
		ProjectID: project.ID, LogID: uuid.NullUUID{UUID: note.ID, Valid: true}, URL: "projects/a/note.jpg", Type: models.MediaPhoto,
	}))
	require.NoError(t, store.CreateMediaItem(ctx, &models.MediaItem{
		ProjectID: project.ID, TodoID: uuid.NullUUID{UUID: todo.ID, Valid: true}, URL: "projects/a/report.mp4", Type: models.MediaVideo,
	}))

	feed := newTestFeed(store)

	views, err := feed.ListMedia(ctx, project.ID, models.KindNote, note.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "https://storage.test/projects/a/note.jpg", views[0].URL)

	views, err = feed.ListMedia(ctx, project.ID, models.KindExecutionReport, report.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.MediaVideo, views[0].Item.Type)

	_, err = feed.ListMedia(ctx, uuid.New(), models.KindNote, note.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = feed.ListMedia(ctx, project.ID, "photo", note.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
