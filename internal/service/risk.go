package service

import (
	"context"
	"fmt"

	"tradejournal/config"
	"tradejournal/internal/dto"
	"tradejournal/internal/repository"
	"tradejournal/internal/risk"
	"tradejournal/internal/stats"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/utils"
)

// TodayRisk is the dashboard risk payload: the current zone plus the one-shot
// alert that fired on this observation, if any.
type TodayRisk struct {
	Status risk.Status `json:"status"`
	Alert  *risk.Alert `json:"alert,omitempty"`
}

type RiskService interface {
	Today(ctx context.Context, userID uint) (*TodayRisk, error)
	TargetProgress(ctx context.Context, userID uint) (*dto.TargetProgress, error)
}

type riskService struct {
	cfg     *config.Config
	log     *logger.Logger
	repo    *repository.Repository
	monitor *risk.Monitor
	clock   *Clock
}

func NewRiskService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	monitor *risk.Monitor,
	clock *Clock,
) RiskService {
	return &riskService{
		cfg:     cfg,
		log:     log,
		repo:    repo,
		monitor: monitor,
		clock:   clock,
	}
}

// Today classifies the day's running loss against the configured limit and
// runs the per-day threshold state machine. Profitable or flat days consume
// zero risk.
func (s *riskService) Today(ctx context.Context, userID uint) (*TodayRisk, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	totalPnl, err := s.todayPnl(ctx, userID)
	if err != nil {
		return nil, err
	}

	usedRisk := 0.0
	if totalPnl < 0 {
		usedRisk = -totalPnl
	}

	status := risk.Classify(usedRisk, profile.MaxDailyLoss)
	result := &TodayRisk{Status: status}

	if alert, fired := s.monitor.Observe(userID, s.clock.TodayKey(), status.Percentage); fired {
		result.Alert = &alert
		s.log.WarnContext(ctx, "Risk threshold crossed",
			logger.IntField("user_id", int(userID)),
			logger.IntField("threshold", alert.Threshold),
			logger.Float64Field("percentage", status.Percentage),
		)
	}

	return result, nil
}

// TargetProgress reports period P&L against the configured daily, weekly and
// monthly profit targets.
func (s *riskService) TargetProgress(ctx context.Context, userID uint) (*dto.TargetProgress, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	trades, err := s.repo.TradeRepo.Get(ctx, dto.GetTradesParam{
		UserID:   userID,
		IsClosed: utils.ToPointer(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}

	now := s.clock.Now()
	daily := stats.Aggregate(stats.FilterPeriod(trades, stats.PeriodToday, now), 0).TotalPnl
	weekly := stats.Aggregate(stats.FilterPeriod(trades, stats.PeriodWeek, now), 0).TotalPnl
	monthly := stats.Aggregate(stats.FilterPeriod(trades, stats.PeriodMonth, now), 0).TotalPnl

	progress := &dto.TargetProgress{
		DailyPnl:   daily,
		WeeklyPnl:  weekly,
		MonthlyPnl: monthly,
	}
	progress.DailyPercent = targetPercent(daily, profile.DailyTarget)
	progress.WeeklyPercent = targetPercent(weekly, profile.WeeklyTarget)
	progress.MonthlyPercent = targetPercent(monthly, profile.MonthlyTarget)
	progress.DailyAchieved = daily > 0 && daily >= profile.DailyTarget
	progress.WeeklyAchieved = weekly > 0 && weekly >= profile.WeeklyTarget
	progress.MonthlyAchieved = monthly > 0 && monthly >= profile.MonthlyTarget

	return progress, nil
}

func (s *riskService) todayPnl(ctx context.Context, userID uint) (float64, error) {
	today := s.clock.Today()
	trades, err := s.repo.TradeRepo.Get(ctx, dto.GetTradesParam{
		UserID:    userID,
		StartDate: &today,
		EndDate:   &today,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to load today's trades: %w", err)
	}

	var total float64
	for _, t := range trades {
		total += t.PnlValue()
	}
	return total, nil
}

// targetPercent clamps progress into [0, 100], matching the dashboard gauge.
func targetPercent(pnl, target float64) float64 {
	if target <= 0 || pnl <= 0 {
		return 0
	}
	percent := pnl / target * 100
	if percent > 100 {
		return 100
	}
	return percent
}
