package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tradejournal/config"
	"tradejournal/internal/dto"
	"tradejournal/internal/model"
	"tradejournal/internal/repository"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/notify"
	"tradejournal/pkg/utils"
)

type ProfileService interface {
	Get(ctx context.Context, userID uint) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*model.Profile, error)
	UpdateRiskLimits(ctx context.Context, userID uint, req dto.UpdateRiskLimitsRequest) (*model.Profile, error)
	UpdateGoals(ctx context.Context, userID uint, req dto.UpdateGoalsRequest) (*model.Profile, error)
	CompleteOnboarding(ctx context.Context, userID uint, req dto.CompleteOnboardingRequest) (*model.Profile, error)
}

type profileService struct {
	cfg  *config.Config
	log  *logger.Logger
	repo *repository.Repository
	hub  *notify.Hub
}

func NewProfileService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	hub *notify.Hub,
) ProfileService {
	return &profileService{
		cfg:  cfg,
		log:  log,
		repo: repo,
		hub:  hub,
	}
}

func (s *profileService) Get(ctx context.Context, userID uint) (*model.Profile, error) {
	return s.repo.ProfileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*model.Profile, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.Theme != nil {
		profile.Theme = model.Theme(*req.Theme)
	}

	return s.save(ctx, profile)
}

func (s *profileService) UpdateRiskLimits(ctx context.Context, userID uint, req dto.UpdateRiskLimitsRequest) (*model.Profile, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.MaxDailyLoss = req.MaxDailyLoss
	profile.MaxTradeLoss = req.MaxTradeLoss
	profile.MaxTradesPerDay = req.MaxTradesPerDay

	return s.save(ctx, profile)
}

func (s *profileService) UpdateGoals(ctx context.Context, userID uint, req dto.UpdateGoalsRequest) (*model.Profile, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.DailyTarget = req.DailyTarget
	profile.WeeklyTarget = req.WeeklyTarget
	profile.MonthlyTarget = req.MonthlyTarget
	if req.TargetHitRatio > 0 {
		profile.TargetHitRatio = req.TargetHitRatio
	}
	if req.TargetROI > 0 {
		profile.TargetROI = req.TargetROI
	}

	return s.save(ctx, profile)
}

// CompleteOnboarding populates the profile and seeds the active rule set in
// one transaction. Current capital starts equal to starting capital and only
// settings screens change it afterwards, realized P&L never rolls into it.
func (s *profileService) CompleteOnboarding(ctx context.Context, userID uint, req dto.CompleteOnboardingRequest) (*model.Profile, error) {
	profile, err := s.repo.ProfileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First onboarding run creates the profile row.
		profile = &model.Profile{UserID: userID, Theme: model.ThemeSystem}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.FullName = utils.ToPointer(req.FullName)
	profile.StartingCapital = req.StartingCapital
	profile.CurrentCapital = req.StartingCapital
	profile.MaxDailyLoss = req.MaxDailyLoss
	profile.MaxTradeLoss = req.MaxTradeLoss
	profile.MaxTradesPerDay = req.MaxTradesPerDay
	profile.DailyTarget = req.DailyTarget
	profile.WeeklyTarget = req.WeeklyTarget
	profile.MonthlyTarget = req.MonthlyTarget
	if req.TargetHitRatio > 0 {
		profile.TargetHitRatio = req.TargetHitRatio
	}
	if req.TargetROI > 0 {
		profile.TargetROI = req.TargetROI
	}
	profile.OnboardingCompleted = true

	rules := onboardingRules(userID, req.Rules)

	err = s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		saveProfile := s.repo.ProfileRepo.Update
		if profile.ID == 0 {
			saveProfile = s.repo.ProfileRepo.Create
		}
		if err := saveProfile(ctx, profile, opts...); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		if err := s.repo.RuleRepo.DeleteAll(ctx, userID, opts...); err != nil {
			return fmt.Errorf("failed to clear rules: %w", err)
		}
		if err := s.repo.RuleRepo.CreateBatch(ctx, rules, opts...); err != nil {
			return fmt.Errorf("failed to seed rules: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to complete onboarding", logger.ErrorField(err), logger.IntField("user_id", int(userID)))
		return nil, err
	}

	s.hub.Publish(notify.Event{Table: model.Profile{}.TableName(), UserID: userID})
	s.log.InfoContext(ctx, "Onboarding completed", logger.IntField("user_id", int(userID)))
	return profile, nil
}

// onboardingRules keeps only the rules the user left active, numbered densely
// in display order. An empty selection falls back to the full default set.
func onboardingRules(userID uint, selected []dto.OnboardingRuleDTO) []model.TradingRule {
	if len(selected) == 0 {
		return model.DefaultTradingRules(userID)
	}

	rules := make([]model.TradingRule, 0, len(selected))
	order := 1
	for _, r := range selected {
		if !r.IsActive {
			continue
		}
		rules = append(rules, model.TradingRule{
			UserID:    userID,
			RuleOrder: order,
			RuleText:  r.RuleText,
			Category:  r.Category,
			IsActive:  true,
		})
		order++
	}
	return rules
}

func (s *profileService) save(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if err := s.repo.ProfileRepo.Update(ctx, profile); err != nil {
		s.log.ErrorContext(ctx, "Failed to update profile", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.hub.Publish(notify.Event{Table: model.Profile{}.TableName(), UserID: profile.UserID})
	return profile, nil
}
