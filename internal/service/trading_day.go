package service

import (
	"context"
	"fmt"
	"time"

	"tradejournal/config"
	"tradejournal/internal/dto"
	"tradejournal/internal/model"
	"tradejournal/internal/repository"
	"tradejournal/internal/stats"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/notify"
	"tradejournal/pkg/utils"
)

type TradingDayService interface {
	StartDay(ctx context.Context, userID uint, req dto.StartDayRequest) (*model.TradingDay, error)
	GetToday(ctx context.Context, userID uint) (*model.TradingDay, error)
	UpdateNotes(ctx context.Context, userID, id uint, req dto.UpdateDayNotesRequest) (*model.TradingDay, error)
	ListMonth(ctx context.Context, userID uint, year int, month time.Month) ([]model.TradingDay, error)
	MonthlySummary(ctx context.Context, userID uint, year int, month time.Month) (*stats.MonthlySummary, error)
	RecomputeDay(ctx context.Context, userID, id uint) error
}

type tradingDayService struct {
	cfg   *config.Config
	log   *logger.Logger
	repo  *repository.Repository
	hub   *notify.Hub
	clock *Clock
}

func NewTradingDayService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	hub *notify.Hub,
	clock *Clock,
) TradingDayService {
	return &tradingDayService{
		cfg:   cfg,
		log:   log,
		repo:  repo,
		hub:   hub,
		clock: clock,
	}
}

// StartDay completes the pre-trading ritual: it upserts today's trading day
// with the opening capital, mood and notes, marks the rules acknowledged and
// activates the day. Repeating the ritual on the same date updates in place.
func (s *tradingDayService) StartDay(ctx context.Context, userID uint, req dto.StartDayRequest) (*model.TradingDay, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := s.clock.Now()
	day := &model.TradingDay{
		UserID:              userID,
		Date:                s.clock.Today(),
		OpeningCapital:      utils.ToPointer(profile.CurrentCapital),
		PreMarketNotes:      req.PreMarketNotes,
		RulesAcknowledged:   true,
		RulesAcknowledgedAt: &now,
		IsActive:            true,
	}
	if req.PreMarketMood != nil {
		day.PreMarketMood = utils.ToPointer(model.Mood(*req.PreMarketMood))
	}

	if err := s.repo.TradingDayRepo.Upsert(ctx, day); err != nil {
		s.log.ErrorContext(ctx, "Failed to start trading day", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to start trading day: %w", err)
	}

	// Re-read to pick up the row id and any preserved aggregates.
	started, err := s.repo.TradingDayRepo.GetByDate(ctx, userID, day.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load started trading day: %w", err)
	}

	s.linkExistingTrades(ctx, userID, started)

	s.hub.Publish(notify.Event{Table: model.TradingDay{}.TableName(), UserID: userID})
	s.log.InfoContext(ctx, "Trading day started",
		logger.IntField("user_id", int(userID)),
		logger.StringField("date", utils.DateKey(started.Date)),
	)
	return started, nil
}

// linkExistingTrades attaches trades logged before the ritual to the fresh
// day row and recomputes its aggregates.
func (s *tradingDayService) linkExistingTrades(ctx context.Context, userID uint, day *model.TradingDay) {
	trades, err := s.tradesOfDay(ctx, userID, day.Date)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load trades for new day", logger.ErrorField(err))
		return
	}

	linked := false
	for i := range trades {
		if trades[i].TradingDayID == nil {
			trades[i].TradingDayID = &day.ID
			if err := s.repo.TradeRepo.Update(ctx, &trades[i]); err != nil {
				s.log.ErrorContext(ctx, "Failed to link trade to day", logger.ErrorField(err))
				continue
			}
			linked = true
		}
	}

	if linked || len(trades) > 0 {
		if err := s.RecomputeDay(ctx, userID, day.ID); err != nil {
			s.log.ErrorContext(ctx, "Failed to recompute new day", logger.ErrorField(err))
		}
	}
}

func (s *tradingDayService) GetToday(ctx context.Context, userID uint) (*model.TradingDay, error) {
	return s.repo.TradingDayRepo.GetByDate(ctx, userID, s.clock.Today())
}

func (s *tradingDayService) UpdateNotes(ctx context.Context, userID, id uint, req dto.UpdateDayNotesRequest) (*model.TradingDay, error) {
	day, err := s.repo.TradingDayRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trading day %d: %w", id, err)
	}

	if req.PostMarketNotes != nil {
		day.PostMarketNotes = req.PostMarketNotes
	}
	if req.DisciplineScore != nil {
		day.DisciplineScore = req.DisciplineScore
	}

	if err := s.repo.TradingDayRepo.Update(ctx, day); err != nil {
		return nil, fmt.Errorf("failed to update trading day: %w", err)
	}

	s.hub.Publish(notify.Event{Table: model.TradingDay{}.TableName(), UserID: userID})
	return day, nil
}

func (s *tradingDayService) ListMonth(ctx context.Context, userID uint, year int, month time.Month) ([]model.TradingDay, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, s.clock.Location())
	return s.repo.TradingDayRepo.GetRange(ctx, userID, start, utils.EndOfMonth(start))
}

func (s *tradingDayService) MonthlySummary(ctx context.Context, userID uint, year int, month time.Month) (*stats.MonthlySummary, error) {
	days, err := s.ListMonth(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month: %w", err)
	}
	summary := stats.SummarizeMonth(days)
	return &summary, nil
}

// RecomputeDay rebuilds the day's derived aggregates from its trades. It is
// invoked after every trade mutation touching the day.
func (s *tradingDayService) RecomputeDay(ctx context.Context, userID, id uint) error {
	day, err := s.repo.TradingDayRepo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to load trading day %d: %w", id, err)
	}

	trades, err := s.tradesOfDay(ctx, userID, day.Date)
	if err != nil {
		return fmt.Errorf("failed to load trades of %s: %w", utils.DateKey(day.Date), err)
	}

	openingCapital := 0.0
	if day.OpeningCapital != nil {
		openingCapital = *day.OpeningCapital
	}
	agg := stats.AggregateDay(trades, openingCapital)

	day.TotalPnl = agg.TotalPnl
	day.TotalTrades = agg.TotalTrades
	day.WinningTrades = agg.WinningTrades
	day.LosingTrades = agg.LosingTrades
	day.MaxProfit = agg.MaxProfit
	day.MaxLoss = agg.MaxLoss
	day.HitRatio = agg.HitRatio
	day.ROIPercent = agg.ROIPercent

	if err := s.repo.TradingDayRepo.Update(ctx, day); err != nil {
		return fmt.Errorf("failed to persist recomputed day: %w", err)
	}

	s.hub.Publish(notify.Event{Table: model.TradingDay{}.TableName(), UserID: userID})
	return nil
}

func (s *tradingDayService) tradesOfDay(ctx context.Context, userID uint, date time.Time) ([]model.Trade, error) {
	day := utils.Midnight(date)
	return s.repo.TradeRepo.Get(ctx, dto.GetTradesParam{
		UserID:    userID,
		StartDate: &day,
		EndDate:   &day,
	})
}
