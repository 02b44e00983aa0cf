package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
)

type ProjectLister interface {
	ListProjectsByStatus(ctx context.Context, status string) ([]models.Project, error)
}

type DayAggregator interface {
	AggregateDay(ctx context.Context, projectID uuid.UUID, day models.Date) (models.DaySummary, error)
}

// MissingReportJob counts, for every open project, the to-dos due today that
// have no execution report dated today.
type MissingReportJob struct {
	projects   ProjectLister
	aggregator DayAggregator
	loc        *time.Location
	logger     *zap.Logger
	timeout    time.Duration

	Now func() time.Time
}

func NewMissingReportJob(projects ProjectLister, aggregator DayAggregator, loc *time.Location, logger *zap.Logger) *MissingReportJob {
	if loc == nil {
		loc = time.UTC
	}
	return &MissingReportJob{
		projects:   projects,
		aggregator: aggregator,
		loc:        loc,
		logger:     logger,
		timeout:    5 * time.Minute,
		Now:        time.Now,
	}
}

func (j *MissingReportJob) Name() string {
	return "missing_report_sweep"
}

// Execute is the scheduled entry point.
func (j *MissingReportJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.Run(ctx); err != nil {
		j.logger.Error("missing report sweep failed", zap.Error(err))
	}
}

// Run sweeps today's open projects and returns the missing count of each
// project that has any. A failing project is logged and skipped.
func (j *MissingReportJob) Run(ctx context.Context) (map[uuid.UUID]int, error) {
	today := models.DateOf(j.Now().In(j.loc))
	j.logger.Info("starting missing report sweep", zap.String("day", today.String()))

	projects, err := j.projects.ListProjectsByStatus(ctx, models.ProjectStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("failed to list open projects: %w", err)
	}

	missing := make(map[uuid.UUID]int)
	for _, project := range projects {
		summary, err := j.aggregator.AggregateDay(ctx, project.ID, today)
		if err != nil {
			j.logger.Warn("failed to aggregate project",
				zap.String("project_id", project.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if summary.MissingReportCount == 0 {
			continue
		}

		missing[project.ID] = summary.MissingReportCount
		j.logger.Info("project has missing reports",
			zap.String("project_id", project.ID.String()),
			zap.String("project", project.Name),
			zap.Int("missing_reports", summary.MissingReportCount),
		)
	}

	j.logger.Info("missing report sweep finished",
		zap.Int("projects", len(projects)),
		zap.Int("with_missing_reports", len(missing)),
	)
	return missing, nil
}
