package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tradejournal/config"
	"tradejournal/internal/dto"
	"tradejournal/internal/model"
	"tradejournal/internal/repository"
	"tradejournal/internal/stats"
	"tradejournal/pkg/cache"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/utils"
)

type StatsService interface {
	Overview(ctx context.Context, userID uint, lookbackDays int) (*dto.StatsOverview, error)
	PeriodStats(ctx context.Context, userID uint, period stats.Period) (*stats.PeriodStats, error)
	PnlSummary(ctx context.Context, userID uint) (*dto.PnlSummary, error)
	EquityCurve(ctx context.Context, userID uint, lookbackDays int) ([]stats.EquityPoint, error)
	DailySeries(ctx context.Context, userID uint) ([]stats.DailyPoint, error)
	Extremes(ctx context.Context, userID uint, lookbackDays int) (*stats.Extremes, error)
}

type statsService struct {
	cfg           *config.Config
	log           *logger.Logger
	repo          *repository.Repository
	inmemoryCache cache.Cache
	clock         *Clock
}

func NewStatsService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	clock *Clock,
) StatsService {
	return &statsService{
		cfg:           cfg,
		log:           log,
		repo:          repo,
		inmemoryCache: inmemoryCache,
		clock:         clock,
	}
}

func statsCacheKey(userID uint, suffix string) string {
	return fmt.Sprintf("stats:%d:%s", userID, suffix)
}

// Overview assembles the analytics page payload from a single ledger fetch:
// the four period statistics, both chart series and the extremes.
func (s *statsService) Overview(ctx context.Context, userID uint, lookbackDays int) (*dto.StatsOverview, error) {
	key := statsCacheKey(userID, fmt.Sprintf("overview:%d", lookbackDays))
	if cached, ok := cache.GetFromCache[*dto.StatsOverview](key); ok {
		return cached, nil
	}

	trades, profile, err := s.fetchLedger(ctx, userID, lookbackDays)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	capital := profile.CurrentCapital

	overview := &dto.StatsOverview{
		Today:    stats.Aggregate(stats.FilterPeriod(trades, stats.PeriodToday, now), capital),
		Week:     stats.Aggregate(stats.FilterPeriod(trades, stats.PeriodWeek, now), capital),
		Month:    stats.Aggregate(stats.FilterPeriod(trades, stats.PeriodMonth, now), capital),
		AllTime:  stats.Aggregate(trades, capital),
		Equity:   stats.EquityCurve(trades),
		Daily:    stats.DailySeries(trades, now, s.cfg.Journal.DailySeriesDays),
		Extremes: stats.FindExtremes(trades),
	}

	s.inmemoryCache.Set(key, overview, s.cfg.Cache.StatsExpiration)
	return overview, nil
}

func (s *statsService) PeriodStats(ctx context.Context, userID uint, period stats.Period) (*stats.PeriodStats, error) {
	trades, profile, err := s.fetchLedger(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	subset := stats.FilterPeriod(trades, period, s.clock.Now())
	result := stats.Aggregate(subset, profile.CurrentCapital)
	return &result, nil
}

func (s *statsService) PnlSummary(ctx context.Context, userID uint) (*dto.PnlSummary, error) {
	overview, err := s.Overview(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	cell := func(ps stats.PeriodStats) dto.PeriodPnl {
		return dto.PeriodPnl{Pnl: ps.TotalPnl, ROI: ps.ROI, Trades: ps.TotalTrades}
	}
	return &dto.PnlSummary{
		Today:   cell(overview.Today),
		Week:    cell(overview.Week),
		Month:   cell(overview.Month),
		AllTime: cell(overview.AllTime),
	}, nil
}

func (s *statsService) EquityCurve(ctx context.Context, userID uint, lookbackDays int) ([]stats.EquityPoint, error) {
	trades, err := s.fetchTrades(ctx, userID, lookbackDays)
	if err != nil {
		return nil, err
	}
	return stats.EquityCurve(trades), nil
}

func (s *statsService) DailySeries(ctx context.Context, userID uint) ([]stats.DailyPoint, error) {
	trades, err := s.fetchTrades(ctx, userID, s.cfg.Journal.DailySeriesDays)
	if err != nil {
		return nil, err
	}
	return stats.DailySeries(trades, s.clock.Now(), s.cfg.Journal.DailySeriesDays), nil
}

func (s *statsService) Extremes(ctx context.Context, userID uint, lookbackDays int) (*stats.Extremes, error) {
	trades, err := s.fetchTrades(ctx, userID, lookbackDays)
	if err != nil {
		return nil, err
	}
	ex := stats.FindExtremes(trades)
	return &ex, nil
}

// fetchLedger loads the closed-trade ledger and the profile in parallel.
func (s *statsService) fetchLedger(ctx context.Context, userID uint, lookbackDays int) ([]model.Trade, *model.Profile, error) {
	var (
		trades  []model.Trade
		profile *model.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trades, err = s.fetchTrades(gctx, userID, lookbackDays)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.repo.ProfileRepo.GetByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch analytics inputs", logger.ErrorField(err))
		return nil, nil, err
	}
	return trades, profile, nil
}

func (s *statsService) fetchTrades(ctx context.Context, userID uint, lookbackDays int) ([]model.Trade, error) {
	param := dto.GetTradesParam{
		UserID:   userID,
		IsClosed: utils.ToPointer(true),
	}
	if lookbackDays > 0 {
		start := s.clock.Today().AddDate(0, 0, -lookbackDays)
		param.StartDate = &start
	}

	trades, err := s.repo.TradeRepo.Get(ctx, param)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}
	return trades, nil
}
