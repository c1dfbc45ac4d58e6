package service

import (
	"context"

	"tradejournal/internal/model"
	"tradejournal/internal/repository"
	"tradejournal/pkg/logger"
)

type QuoteService interface {
	Random(ctx context.Context) (*model.Quote, error)
}

type quoteService struct {
	log       *logger.Logger
	quoteRepo repository.QuoteRepository
}

func NewQuoteService(log *logger.Logger, quoteRepo repository.QuoteRepository) QuoteService {
	return &quoteService{
		log:       log,
		quoteRepo: quoteRepo,
	}
}

// Random returns a random active quote, nil when none are seeded.
func (s *quoteService) Random(ctx context.Context) (*model.Quote, error) {
	return s.quoteRepo.GetRandomActive(ctx)
}
