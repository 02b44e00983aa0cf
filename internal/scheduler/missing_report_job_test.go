package scheduler_test

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
	"sitelog-backend/internal/scheduler"
)

type stubProjects struct {
	projects []models.Project
	err      error
	status   string
}

func (s *stubProjects) ListProjectsByStatus(ctx context.Context, status string) ([]models.Project, error) {
	s.status = status
	return s.projects, s.err
}

type stubAggregator struct {
	missing map[uuid.UUID]int
	failing map[uuid.UUID]bool
	days    []models.Date
}

func (s *stubAggregator) AggregateDay(ctx context.Context, projectID uuid.UUID, day models.Date) (models.DaySummary, error) {
	s.days = append(s.days, day)
	if s.failing[projectID] {
		return models.DaySummary{}, errors.New("feed unavailable")
	}
	return models.DaySummary{Date: day, MissingReportCount: s.missing[projectID]}, nil
}

func TestMissingReportJob_Run(t *testing.T) {
	behind := models.Project{ID: uuid.New(), Name: "Behind"}
	onTrack := models.Project{ID: uuid.New(), Name: "On track"}
	broken := models.Project{ID: uuid.New(), Name: "Broken"}

	projects := &stubProjects{projects: []models.Project{behind, onTrack, broken}}
	aggregator := &stubAggregator{
		missing: map[uuid.UUID]int{behind.ID: 2},
		failing: map[uuid.UUID]bool{broken.ID: true},
	}

	loc := time.FixedZone("UTC-6", -6*60*60)
	job := scheduler.NewMissingReportJob(projects, aggregator, loc, zap.NewNop())
	// 02:00 UTC on the 2nd is still the 1st at UTC-6.
	job.Now = func() time.Time { return time.Date(2024, 7, 2, 2, 0, 0, 0, time.UTC) }

	missing, err := job.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]int{behind.ID: 2}, missing)
	assert.Equal(t, models.ProjectStatusOpen, projects.status)
	require.Len(t, aggregator.days, 3)
	assert.Equal(t, "2024-07-01", aggregator.days[0].String())
}

func TestMissingReportJob_ListFails(t *testing.T) {
	job := scheduler.NewMissingReportJob(&stubProjects{err: errors.New("db down")}, &stubAggregator{}, nil, zap.NewNop())
	_, err := job.Run(context.Background())
	assert.Error(t, err)
}

func TestManager_RegisterMissingReportSweep(t *testing.T) {
	job := scheduler.NewMissingReportJob(&stubProjects{}, &stubAggregator{}, time.UTC, zap.NewNop())

	manager, err := scheduler.NewManager(time.UTC, zap.NewNop())
	require.NoError(t, err)
	manager.Start()
	t.Cleanup(manager.Stop)

	require.NoError(t, manager.RegisterMissingReportSweep(job, ""))
	assert.Equal(t, 0, manager.Jobs())

	assert.Error(t, manager.RegisterMissingReportSweep(job, "not a cron"))

	require.NoError(t, manager.RegisterMissingReportSweep(job, "0 18 * * *"))
	assert.Equal(t, 1, manager.Jobs())
}
