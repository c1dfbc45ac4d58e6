package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tradejournal/config"
	"tradejournal/internal/dto"
	"tradejournal/internal/model"
	"tradejournal/internal/repository"
	"tradejournal/pkg/cache"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/notify"
	"tradejournal/pkg/utils"
)

type TradeService interface {
	Create(ctx context.Context, userID uint, req dto.CreateTradeRequest) (*model.Trade, error)
	Update(ctx context.Context, userID, id uint, req dto.UpdateTradeRequest) (*model.Trade, error)
	Delete(ctx context.Context, userID, id uint) error
	Get(ctx context.Context, userID, id uint) (*model.Trade, error)
	List(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error)
}

type tradeService struct {
	cfg           *config.Config
	log           *logger.Logger
	repo          *repository.Repository
	dayService    TradingDayService
	inmemoryCache cache.Cache
	hub           *notify.Hub
	clock         *Clock
}

func NewTradeService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	dayService TradingDayService,
	inmemoryCache cache.Cache,
	hub *notify.Hub,
	clock *Clock,
) TradeService {
	return &tradeService{
		cfg:           cfg,
		log:           log,
		repo:          repo,
		dayService:    dayService,
		inmemoryCache: inmemoryCache,
		hub:           hub,
		clock:         clock,
	}
}

func (s *tradeService) Create(ctx context.Context, userID uint, req dto.CreateTradeRequest) (*model.Trade, error) {
	trade, err := s.buildTrade(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TradeRepo.Create(ctx, trade); err != nil {
		s.log.ErrorContext(ctx, "Failed to create trade", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	s.afterMutation(ctx, userID, trade.TradingDayID)
	return trade, nil
}

func (s *tradeService) Update(ctx context.Context, userID, id uint, req dto.UpdateTradeRequest) (*model.Trade, error) {
	existing, err := s.repo.TradeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade %d: %w", id, err)
	}
	previousDayID := existing.TradingDayID

	trade, err := s.buildTrade(ctx, userID, req.CreateTradeRequest)
	if err != nil {
		return nil, err
	}
	trade.ID = existing.ID
	trade.CreatedAt = existing.CreatedAt

	if err := s.repo.TradeRepo.Update(ctx, trade); err != nil {
		s.log.ErrorContext(ctx, "Failed to update trade", logger.ErrorField(err), logger.IntField("trade_id", int(id)))
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}

	// An edited trade date can move the trade between trading days, both
	// sides need their aggregates refreshed.
	if previousDayID != nil && (trade.TradingDayID == nil || *previousDayID != *trade.TradingDayID) {
		s.recomputeDay(ctx, userID, previousDayID)
	}
	s.afterMutation(ctx, userID, trade.TradingDayID)
	return trade, nil
}

func (s *tradeService) Delete(ctx context.Context, userID, id uint) error {
	existing, err := s.repo.TradeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to load trade %d: %w", id, err)
	}

	if err := s.repo.TradeRepo.Delete(ctx, userID, id); err != nil {
		s.log.ErrorContext(ctx, "Failed to delete trade", logger.ErrorField(err), logger.IntField("trade_id", int(id)))
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	s.afterMutation(ctx, userID, existing.TradingDayID)
	return nil
}

func (s *tradeService) Get(ctx context.Context, userID, id uint) (*model.Trade, error) {
	return s.repo.TradeRepo.GetByID(ctx, userID, id)
}

func (s *tradeService) List(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error) {
	return s.repo.TradeRepo.Get(ctx, param)
}

// buildTrade turns a request into a model row: symbol uppercased, P&L and
// winner flag derived from entry/exit, trading day linked by (user, date)
// when one exists.
func (s *tradeService) buildTrade(ctx context.Context, userID uint, req dto.CreateTradeRequest) (*model.Trade, error) {
	tradeDate, err := time.ParseInLocation(utils.DateKeyLayout, req.TradeDate, s.clock.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid trade date %q: %w", req.TradeDate, err)
	}

	trade := &model.Trade{
		UserID:        userID,
		TradeDate:     tradeDate,
		TradeTime:     req.TradeTime,
		Symbol:        strings.ToUpper(strings.TrimSpace(req.Symbol)),
		TradeType:     model.TradeType(req.TradeType),
		Quantity:      req.Quantity,
		EntryPrice:    req.EntryPrice,
		ExitPrice:     req.ExitPrice,
		Broker:        model.Broker(req.Broker),
		EmotionBefore: req.EmotionBefore,
		EmotionAfter:  req.EmotionAfter,
		Notes:         req.Notes,
		ScreenshotURL: req.ScreenshotURL,
	}

	if req.ExitPrice != nil {
		pnl := model.ComputePnl(trade.TradeType, trade.EntryPrice, *req.ExitPrice, trade.Quantity)
		trade.Pnl = &pnl
		trade.IsWinner = utils.ToPointer(pnl > 0)
		trade.IsClosed = true
	}

	day, err := s.repo.TradingDayRepo.GetByDate(ctx, userID, tradeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up trading day: %w", err)
	}
	if day != nil {
		trade.TradingDayID = &day.ID
	}

	return trade, nil
}

// afterMutation recomputes the linked trading day, drops the user's cached
// statistics and publishes the change signal consumers re-fetch on.
func (s *tradeService) afterMutation(ctx context.Context, userID uint, tradingDayID *uint) {
	s.recomputeDay(ctx, userID, tradingDayID)
	s.inmemoryCache.DeletePrefix(statsCacheKey(userID, ""))
	s.hub.Publish(notify.Event{Table: model.Trade{}.TableName(), UserID: userID})
}

func (s *tradeService) recomputeDay(ctx context.Context, userID uint, tradingDayID *uint) {
	if tradingDayID == nil {
		return
	}
	if err := s.dayService.RecomputeDay(ctx, userID, *tradingDayID); err != nil {
		s.log.ErrorContext(ctx, "Failed to recompute trading day",
			logger.ErrorField(err),
			logger.IntField("trading_day_id", int(*tradingDayID)),
		)
	}
}
