package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Manager owns the gocron scheduler for background jobs.
type Manager struct {
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

func NewManager(loc *time.Location, logger *zap.Logger) (*Manager, error) {
	if loc == nil {
		loc = time.UTC
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Manager{scheduler: s, logger: logger}, nil
}

// RegisterMissingReportSweep schedules job on a five-field cron expression.
// An empty expression leaves the sweep disabled.
func (m *Manager) RegisterMissingReportSweep(job *MissingReportJob, cronExpr string) error {
	if cronExpr == "" {
		m.logger.Info("missing report sweep disabled")
		return nil
	}

	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}

	m.logger.Info("registered job", zap.String("job", job.Name()), zap.String("cron", cronExpr))
	return nil
}

// Jobs is the number of registered jobs.
func (m *Manager) Jobs() int {
	return len(m.scheduler.Jobs())
}

func (m *Manager) Start() {
	m.scheduler.Start()
	m.logger.Info("scheduler started")
}

func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Error("failed to shut down scheduler", zap.Error(err))
		return
	}
	m.logger.Info("scheduler stopped")
}
