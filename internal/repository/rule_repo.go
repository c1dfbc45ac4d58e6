package repository

import (
	"context"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"

	"gorm.io/gorm"
)

type TradingRuleRepository interface {
	Get(ctx context.Context, userID uint, activeOnly bool) ([]model.TradingRule, error)
	CreateBatch(ctx context.Context, rules []model.TradingRule, opts ...utils.DBOption) error
	DeleteAll(ctx context.Context, userID uint, opts ...utils.DBOption) error
}

type tradingRuleRepository struct {
	db *gorm.DB
}

func NewTradingRuleRepository(db *gorm.DB) TradingRuleRepository {
	return &tradingRuleRepository{
		db: db,
	}
}

func (r *tradingRuleRepository) Get(ctx context.Context, userID uint, activeOnly bool) ([]model.TradingRule, error) {
	var rules []model.TradingRule

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	if err := q.Order("rule_order ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *tradingRuleRepository) CreateBatch(ctx context.Context, rules []model.TradingRule, opts ...utils.DBOption) error {
	if len(rules) == 0 {
		return nil
	}
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(&rules).Error
}

func (r *tradingRuleRepository) DeleteAll(ctx context.Context, userID uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("user_id = ?", userID).
		Delete(&model.TradingRule{}).Error
}
