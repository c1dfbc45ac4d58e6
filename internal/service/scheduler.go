package service

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"tradejournal/config"
	"tradejournal/internal/risk"
	"tradejournal/pkg/cache"
	"tradejournal/pkg/logger"
)

type SchedulerService interface {
	Start(ctx context.Context) error
	Stop()
	RunDayReset(ctx context.Context)
}

// schedulerService owns the start-of-day sweep: risk-alert monitors reset so
// each new trading day can fire its one-shot threshold alerts again, and the
// cached statistics from yesterday are dropped.
type schedulerService struct {
	cfg           *config.Config
	log           *logger.Logger
	monitor       *risk.Monitor
	inmemoryCache cache.Cache
	cron          *cron.Cron
}

func NewSchedulerService(
	cfg *config.Config,
	log *logger.Logger,
	monitor *risk.Monitor,
	inmemoryCache cache.Cache,
) SchedulerService {
	return &schedulerService{
		cfg:           cfg,
		log:           log,
		monitor:       monitor,
		inmemoryCache: inmemoryCache,
		cron:          cron.New(),
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Scheduler.DayResetSpec, func() {
		runCtx, cancel := context.WithTimeout(ctx, s.cfg.Scheduler.TimeoutDuration)
		defer cancel()
		s.RunDayReset(runCtx)
	})
	if err != nil {
		return fmt.Errorf("invalid day reset spec %q: %w", s.cfg.Scheduler.DayResetSpec, err)
	}

	s.cron.Start()
	s.log.Info("Scheduler started", logger.StringField("day_reset_spec", s.cfg.Scheduler.DayResetSpec))
	return nil
}

func (s *schedulerService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("Scheduler stopped")
}

func (s *schedulerService) RunDayReset(ctx context.Context) {
	s.monitor.Reset()
	s.inmemoryCache.Flush()
	s.log.InfoContext(ctx, "Day reset sweep completed")
}
