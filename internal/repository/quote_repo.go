package repository

import (
	"context"
	"errors"

	"tradejournal/internal/model"

	"gorm.io/gorm"
)

type QuoteRepository interface {
	GetRandomActive(ctx context.Context) (*model.Quote, error)
}

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{
		db: db,
	}
}

func (r *quoteRepository) GetRandomActive(ctx context.Context) (*model.Quote, error) {
	var quote model.Quote
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("RANDOM()").
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}
