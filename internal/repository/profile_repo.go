package repository

import (
	"context"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile, opts ...utils.DBOption) error
	Update(ctx context.Context, profile *model.Profile, opts ...utils.DBOption) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Save(profile).Error
}
