package repository

import (
	"context"
	"errors"
	"time"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TradingDayRepository interface {
	GetByDate(ctx context.Context, userID uint, date time.Time) (*model.TradingDay, error)
	GetByID(ctx context.Context, userID, id uint) (*model.TradingDay, error)
	GetRange(ctx context.Context, userID uint, start, end time.Time) ([]model.TradingDay, error)
	Upsert(ctx context.Context, day *model.TradingDay, opts ...utils.DBOption) error
	Update(ctx context.Context, day *model.TradingDay, opts ...utils.DBOption) error
}

type tradingDayRepository struct {
	db *gorm.DB
}

func NewTradingDayRepository(db *gorm.DB) TradingDayRepository {
	return &tradingDayRepository{
		db: db,
	}
}

// GetByDate returns nil without error when no row exists, a missing trading
// day is a normal empty state.
func (r *tradingDayRepository) GetByDate(ctx context.Context, userID uint, date time.Time) (*model.TradingDay, error) {
	var day model.TradingDay
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, utils.Midnight(date)).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *tradingDayRepository) GetByID(ctx context.Context, userID, id uint) (*model.TradingDay, error) {
	var day model.TradingDay
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *tradingDayRepository) GetRange(ctx context.Context, userID uint, start, end time.Time) ([]model.TradingDay, error) {
	var days []model.TradingDay
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// Upsert inserts or updates the row keyed by (user_id, date).
func (r *tradingDayRepository) Upsert(ctx context.Context, day *model.TradingDay, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"opening_capital", "pre_market_mood", "pre_market_notes",
				"rules_acknowledged", "rules_acknowledged_at", "is_active", "updated_at",
			}),
		}).
		Create(day).Error
}

func (r *tradingDayRepository) Update(ctx context.Context, day *model.TradingDay, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Save(day).Error
}
