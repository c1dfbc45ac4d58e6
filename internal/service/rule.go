package service

import (
	"context"
	"fmt"

	"tradejournal/config"
	"tradejournal/internal/dto"
	"tradejournal/internal/model"
	"tradejournal/internal/repository"
	"tradejournal/pkg/logger"
	"tradejournal/pkg/notify"
	"tradejournal/pkg/utils"
)

type RuleService interface {
	List(ctx context.Context, userID uint, activeOnly bool) ([]model.TradingRule, error)
	ReplaceAll(ctx context.Context, userID uint, req dto.ReplaceRulesRequest) ([]model.TradingRule, error)
}

type ruleService struct {
	cfg  *config.Config
	log  *logger.Logger
	repo *repository.Repository
	hub  *notify.Hub
}

func NewRuleService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	hub *notify.Hub,
) RuleService {
	return &ruleService{
		cfg:  cfg,
		log:  log,
		repo: repo,
		hub:  hub,
	}
}

func (s *ruleService) List(ctx context.Context, userID uint, activeOnly bool) ([]model.TradingRule, error) {
	return s.repo.RuleRepo.Get(ctx, userID, activeOnly)
}

// ReplaceAll rewrites the user's rule set: delete all rows, insert the new
// ones with dense order taken from the request slice, in one transaction.
func (s *ruleService) ReplaceAll(ctx context.Context, userID uint, req dto.ReplaceRulesRequest) ([]model.TradingRule, error) {
	rules := make([]model.TradingRule, 0, len(req.Rules))
	for i, r := range req.Rules {
		rules = append(rules, model.TradingRule{
			UserID:    userID,
			RuleOrder: i + 1,
			RuleText:  r.RuleText,
			Category:  r.Category,
			IsActive:  r.IsActive,
		})
	}

	err := s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		if err := s.repo.RuleRepo.DeleteAll(ctx, userID, opts...); err != nil {
			return fmt.Errorf("failed to clear rules: %w", err)
		}
		if err := s.repo.RuleRepo.CreateBatch(ctx, rules, opts...); err != nil {
			return fmt.Errorf("failed to insert rules: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to replace rules", logger.ErrorField(err), logger.IntField("user_id", int(userID)))
		return nil, err
	}

	s.hub.Publish(notify.Event{Table: model.TradingRule{}.TableName(), UserID: userID})
	return rules, nil
}
