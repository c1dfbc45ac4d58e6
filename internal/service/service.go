package service

import (
	"tradejournal/config"
	"tradejournal/internal/repository"
	"tradejournal/internal/risk"
	"tradejournal/pkg/cache"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/notify"
)

type Service struct {
	TradeService      TradeService
	TradingDayService TradingDayService
	StatsService      StatsService
	RiskService       RiskService
	ProfileService    ProfileService
	RuleService       RuleService
	QuoteService      QuoteService
	SchedulerService  SchedulerService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	hub *notify.Hub,
) *Service {
	clock := NewClock(cfg.Journal.TimeZone)
	monitor := risk.NewMonitor()

	tradingDayService := NewTradingDayService(cfg, log, repo, hub, clock)
	tradeService := NewTradeService(cfg, log, repo, tradingDayService, inmemoryCache, hub, clock)
	statsService := NewStatsService(cfg, log, repo, inmemoryCache, clock)
	riskService := NewRiskService(cfg, log, repo, monitor, clock)
	profileService := NewProfileService(cfg, log, repo, hub)
	ruleService := NewRuleService(cfg, log, repo, hub)
	quoteService := NewQuoteService(log, repo.QuoteRepo)
	schedulerService := NewSchedulerService(cfg, log, monitor, inmemoryCache)

	return &Service{
		TradeService:      tradeService,
		TradingDayService: tradingDayService,
		StatsService:      statsService,
		RiskService:       riskService,
		ProfileService:    profileService,
		RuleService:       ruleService,
		QuoteService:      quoteService,
		SchedulerService:  schedulerService,
	}
}
