package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/pkg/config"
	"github.com/Employeest/employeest-be/internal/repository"
)

// Scheduler runs background jobs on cron schedules.
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	tokenRepo     repository.AuthTokenRepository
	cronSchedules map[string]cron.EntryID
}

func NewScheduler(db *gorm.DB, logger *zap.Logger) *Scheduler {
	// cron expressions carry a leading seconds field
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		tokenRepo:     repository.NewAuthTokenRepository(db),
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	cronExpr := cfg.Scheduler.TokenPurgeCron
	if cronExpr == "" {
		cronExpr = "0 0 3 * * *" // daily at 03:00
		log.Warnw("scheduler.token_purge_cron not set, using default", "cron", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		purged, err := s.tokenRepo.DeleteExpired(time.Now())
		if err != nil {
			log.Errorf("token purge job failed: %v", err)
			return
		}
		if purged > 0 {
			log.Infow("purged expired auth tokens", "count", purged)
		}
	})
	if err != nil {
		log.Errorf("failed to register token purge job %q: %v", cronExpr, err)
		return err
	}

	s.cronSchedules["token_purge"] = entryID
	log.Infow("token purge job registered", "cron", cronExpr, "entry_id", entryID)

	s.cron.Start()
	return nil
}

// Stop halts the cron loop, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// TriggerTokenPurge runs the purge immediately, outside the schedule.
func (s *Scheduler) TriggerTokenPurge() (int64, error) {
	return s.tokenRepo.DeleteExpired(time.Now())
}
