package repository

import (
	"context"
	"strings"

	"tradejournal/internal/dto"
	"tradejournal/internal/model"
	"tradejournal/pkg/utils"

	"gorm.io/gorm"
)

type TradeRepository interface {
	Get(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error)
	GetByID(ctx context.Context, userID, id uint) (*model.Trade, error)
	Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Delete(ctx context.Context, userID, id uint, opts ...utils.DBOption) error
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

func (r *tradeRepository) Get(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error) {
	var trades []model.Trade

	qFilter := []string{"user_id = ?"}
	qFilterParam := []interface{}{param.UserID}

	if param.StartDate != nil {
		qFilter = append(qFilter, "trade_date >= ?")
		qFilterParam = append(qFilterParam, *param.StartDate)
	}

	if param.EndDate != nil {
		qFilter = append(qFilter, "trade_date <= ?")
		qFilterParam = append(qFilterParam, *param.EndDate)
	}

	if param.IsClosed != nil {
		qFilter = append(qFilter, "is_closed = ?")
		qFilterParam = append(qFilterParam, *param.IsClosed)
	}

	order := "trade_date ASC, created_at ASC"
	if param.OrderDesc {
		order = "trade_date DESC, created_at DESC"
	}

	if err := r.db.WithContext(ctx).
		Where(strings.Join(qFilter, " AND "), qFilterParam...).
		Order(order).
		Find(&trades).Error; err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *tradeRepository) GetByID(ctx context.Context, userID, id uint) (*model.Trade, error) {
	var trade model.Trade
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&trade).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(trade).Error
}

func (r *tradeRepository) Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Save(trade).Error
}

func (r *tradeRepository) Delete(ctx context.Context, userID, id uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Trade{}).Error
}
