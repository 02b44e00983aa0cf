package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
)

// Presentation modes for Aggregate.
const (
	ModeFeed     = "feed"     // newest day first
	ModeDocument = "document" // oldest day first
)

func ValidMode(mode string) bool {
	return mode == ModeFeed || mode == ModeDocument
}

// DailyAggregator groups a project's feed by calendar day and works out which
// due to-dos went unreported each day.
type DailyAggregator struct {
	feed   *FeedRepository
	logger *zap.Logger
}

func NewDailyAggregator(feed *FeedRepository, logger *zap.Logger) *DailyAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyAggregator{feed: feed, logger: logger}
}

// Aggregate returns one summary per non-empty day in rng. Days are ordered by
// mode; notes within a day follow the same direction.
func (a *DailyAggregator) Aggregate(ctx context.Context, projectID uuid.UUID, rng DateRange, mode string) ([]models.DaySummary, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ModeFeed
	}
	if !ValidMode(mode) {
		return nil, fmt.Errorf("unknown aggregation mode %q", mode)
	}

	items, err := a.feed.ListFeed(ctx, projectID, rng, FeedFilter{})
	if err != nil {
		return nil, err
	}
	due, err := a.feed.ListDueTodos(ctx, projectID, rng.To)
	if err != nil {
		return nil, err
	}

	byDay := make(map[models.Date][]models.FeedItem)
	for _, item := range items {
		day := models.DateOf(item.EntryDate.In(a.feed.Location()))
		byDay[day] = append(byDay[day], item)
	}

	dueDates := make(map[uuid.UUID]*models.Date, len(due))
	for _, todo := range due {
		dueDates[todo.ID] = todo.DueDate
	}

	var summaries []models.DaySummary
	for _, day := range rng.Days() {
		summary := summarizeDay(day, byDay[day], due, dueDates)
		if summary.Empty() {
			continue
		}
		if mode == ModeDocument {
			reverseNotes(summary.Notes)
		}
		summaries = append(summaries, summary)
	}

	if mode == ModeFeed {
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Date.After(summaries[j].Date)
		})
	}

	a.logger.Debug("aggregated daily log",
		zap.String("project_id", projectID.String()),
		zap.String("from", rng.From.String()),
		zap.String("to", rng.To.String()),
		zap.Int("days", len(summaries)),
	)
	return summaries, nil
}

// AggregateDay summarises a single day. The summary is returned even when
// empty so a document view can render the day it was asked for.
func (a *DailyAggregator) AggregateDay(ctx context.Context, projectID uuid.UUID, day models.Date) (models.DaySummary, error) {
	days, err := a.Aggregate(ctx, projectID, SingleDay(day), ModeDocument)
	if err != nil {
		return models.DaySummary{}, err
	}
	if len(days) == 0 {
		return models.DaySummary{
			Date:             day,
			Notes:            []models.FeedItem{},
			UncompletedTodos: []models.TodoStatus{},
			CompletedTodos:   []models.TodoStatus{},
		}, nil
	}
	return days[0], nil
}

// summarizeDay builds one day's buckets. items are that day's feed entries,
// newest first. A to-do counts as missing when it is due by day and has no
// report dated day, independently of every other day.
func summarizeDay(day models.Date, items []models.FeedItem, due []models.Todo, dueDates map[uuid.UUID]*models.Date) models.DaySummary {
	summary := models.DaySummary{
		Date:             day,
		Notes:            []models.FeedItem{},
		UncompletedTodos: []models.TodoStatus{},
		CompletedTodos:   []models.TodoStatus{},
	}

	reported := make(map[uuid.UUID]bool)
	for _, item := range items {
		switch item.Kind {
		case models.KindNote:
			summary.Notes = append(summary.Notes, item)
		case models.KindExecutionReport:
			if !item.TodoID.Valid {
				continue
			}
			reported[item.TodoID.UUID] = true

			status := models.TodoStatus{
				TodoID:       item.TodoID.UUID,
				TodoTitle:    item.TodoTitle.String,
				DueDate:      dueDates[item.TodoID.UUID],
				ReportID:     uuid.NullUUID{UUID: item.EntryID, Valid: true},
				ExecStatus:   item.Status.String,
				ExecDetail:   item.Detail.String,
				ReasonLabel:  item.ReasonLabel.String,
				ReviewStatus: item.ReviewStatus.String,
				MediaCount:   item.MediaCount,
			}
			if item.Status.String == models.ExecStatusExecuted {
				summary.CompletedTodos = append(summary.CompletedTodos, status)
			} else {
				summary.UncompletedTodos = append(summary.UncompletedTodos, status)
			}
		}
	}

	for _, todo := range due {
		if todo.Status != models.TodoStatusIncomplete || !todo.DueOn(day) || reported[todo.ID] {
			continue
		}
		summary.UncompletedTodos = append(summary.UncompletedTodos, models.TodoStatus{
			TodoID:    todo.ID,
			TodoTitle: todo.Title,
			DueDate:   todo.DueDate,
		})
		summary.MissingReportCount++
	}

	return summary
}

func reverseNotes(notes []models.FeedItem) {
	for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
		notes[i], notes[j] = notes[j], notes[i]
	}
}
