package repository

import (
	"tradejournal/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	TradeRepo      TradeRepository
	TradingDayRepo TradingDayRepository
	ProfileRepo    ProfileRepository
	RuleRepo       TradingRuleRepository
	QuoteRepo      QuoteRepository
	UnitOfWork     UnitOfWork
}

func NewRepository(db *gorm.DB, log *logger.Logger) *Repository {
	return &Repository{
		TradeRepo:      NewTradeRepository(db),
		TradingDayRepo: NewTradingDayRepository(db),
		ProfileRepo:    NewProfileRepository(db),
		RuleRepo:       NewTradingRuleRepository(db),
		QuoteRepo:      NewQuoteRepository(db),
		UnitOfWork:     NewUnitOfWork(db),
	}
}
