package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sourcelane/rfq-backend/internal/data/repos"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type QuoteService interface {
	ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]*domain.Quote, error)
}

type quoteService struct {
	log  *logger.Logger
	repo repos.QuoteRepo
}

func NewQuoteService(log *logger.Logger, repo repos.QuoteRepo) QuoteService {
	return &quoteService{log: log.With("service", "QuoteService"), repo: repo}
}

func (s *quoteService) ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]*domain.Quote, error) {
	return s.repo.ListByRFQ(dbctx.Context{Ctx: ctx}, rfqID)
}
