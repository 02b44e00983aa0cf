package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

func newTestAggregator(store *memStore) *services.DailyAggregator {
	return services.NewDailyAggregator(newTestFeed(store), zap.NewNop())
}

func TestDailyAggregator_MissingReportsPerDay(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	todo := store.addTodo(project.ID, "Pour slab", datePtr("2024-07-01"))
	store.addReport(todo.ID, models.ExecStatusPartial, at("2024-07-02", 16))

	agg := newTestAggregator(store)
	days, err := agg.Aggregate(context.Background(), project.ID,
		services.DateRange{From: date("2024-07-01"), To: date("2024-07-03")}, services.ModeDocument)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, date("2024-07-01"), days[0].Date)
	assert.Equal(t, 1, days[0].MissingReportCount)
	require.Len(t, days[0].UncompletedTodos, 1)
	assert.False(t, days[0].UncompletedTodos[0].Reported())

	assert.Equal(t, date("2024-07-02"), days[1].Date)
	assert.Equal(t, 0, days[1].MissingReportCount)
	require.Len(t, days[1].UncompletedTodos, 1)
	assert.True(t, days[1].UncompletedTodos[0].Reported())
	assert.Equal(t, models.ExecStatusPartial, days[1].UncompletedTodos[0].ExecStatus)

	assert.Equal(t, date("2024-07-03"), days[2].Date)
	assert.Equal(t, 1, days[2].MissingReportCount)
}

func TestDailyAggregator_ExecutedIsCompleted(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	todo := store.addTodo(project.ID, "Pour slab", datePtr("2024-07-01"))
	store.addReport(todo.ID, models.ExecStatusExecuted, at("2024-07-01", 16))

	day, err := newTestAggregator(store).AggregateDay(context.Background(), project.ID, date("2024-07-01"))
	require.NoError(t, err)

	require.Len(t, day.CompletedTodos, 1)
	assert.Equal(t, todo.ID, day.CompletedTodos[0].TodoID)
	assert.Empty(t, day.UncompletedTodos)
	assert.Equal(t, 0, day.MissingReportCount)
}

func TestDailyAggregator_Idempotent(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	store.addTodo(project.ID, "Pour slab", datePtr("2024-07-01"))
	store.addNote(project.ID, "Crew arrived", at("2024-07-01", 8), uuid.NullUUID{})

	agg := newTestAggregator(store)
	rng := services.DateRange{From: date("2024-07-01"), To: date("2024-07-02")}

	first, err := agg.Aggregate(context.Background(), project.ID, rng, services.ModeFeed)
	require.NoError(t, err)
	second, err := agg.Aggregate(context.Background(), project.ID, rng, services.ModeFeed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDailyAggregator_Modes(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	early := store.addNote(project.ID, "Morning", at("2024-07-01", 8), uuid.NullUUID{})
	late := store.addNote(project.ID, "Evening", at("2024-07-01", 18), uuid.NullUUID{})
	store.addNote(project.ID, "Next day", at("2024-07-03", 9), uuid.NullUUID{})

	agg := newTestAggregator(store)
	rng := services.DateRange{From: date("2024-07-01"), To: date("2024-07-03")}

	feed, err := agg.Aggregate(context.Background(), project.ID, rng, "")
	require.NoError(t, err)
	require.Len(t, feed, 2, "the empty day in between is dropped")
	assert.Equal(t, date("2024-07-03"), feed[0].Date)
	assert.Equal(t, date("2024-07-01"), feed[1].Date)
	assert.Equal(t, late.ID, feed[1].Notes[0].EntryID)

	doc, err := agg.Aggregate(context.Background(), project.ID, rng, services.ModeDocument)
	require.NoError(t, err)
	require.Len(t, doc, 2)
	assert.Equal(t, date("2024-07-01"), doc[0].Date)
	assert.Equal(t, early.ID, doc[0].Notes[0].EntryID)

	_, err = agg.Aggregate(context.Background(), project.ID, rng, "calendar")
	assert.Error(t, err)
}

func TestDailyAggregator_EmptyRange(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	store.addTodo(project.ID, "Pour slab", datePtr("2024-07-10"))

	agg := newTestAggregator(store)
	days, err := agg.Aggregate(context.Background(), project.ID,
		services.DateRange{From: date("2024-07-01"), To: date("2024-07-03")}, services.ModeFeed)
	require.NoError(t, err)
	assert.Empty(t, days)

	day, err := agg.AggregateDay(context.Background(), project.ID, date("2024-07-02"))
	require.NoError(t, err)
	assert.True(t, day.Empty())
	assert.Equal(t, date("2024-07-02"), day.Date)
}

func TestDailyAggregator_DayBoundariesFollowLocation(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)
	store := newMemStore()
	project := store.addProject("Tower A")
	// 03:00 UTC on the 2nd is still the evening of the 1st at UTC-6.
	note := store.addNote(project.ID, "Late pour", at("2024-07-02", 3), uuid.NullUUID{})

	feed := services.NewFeedRepository(store, newFakeBlobs(), loc, zap.NewNop())
	agg := services.NewDailyAggregator(feed, zap.NewNop())

	day, err := agg.AggregateDay(context.Background(), project.ID, date("2024-07-01"))
	require.NoError(t, err)
	require.Len(t, day.Notes, 1)
	assert.Equal(t, note.ID, day.Notes[0].EntryID)
}
