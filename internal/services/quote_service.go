package services

import (
	"context"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/utils"
)

var fallbackQuote = response_models.QuoteResponse{
	Text:   "Eres mi lugar favorito en el mundo.",
	Author: "Anónimo",
}

type QuoteServiceInterface interface {
	// Random never fails; an empty table or a read error yields the fallback quote.
	Random(ctx context.Context) response_models.QuoteResponse
	List(ctx context.Context) ([]db_models.Quote, error)
	Create(ctx context.Context, req request_models.CreateQuoteRequest) (*db_models.Quote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type QuoteService struct {
	quoteRepo repositories.QuoteRepository
}

func NewQuoteService(quoteRepo repositories.QuoteRepository) *QuoteService {
	return &QuoteService{quoteRepo: quoteRepo}
}

func (s *QuoteService) Random(ctx context.Context) response_models.QuoteResponse {
	q, err := s.quoteRepo.Random(ctx)
	if err != nil || q == nil {
		return fallbackQuote
	}
	return response_models.QuoteResponse{Text: q.Text, Author: q.Author}
}

func (s *QuoteService) List(ctx context.Context) ([]db_models.Quote, error) {
	quotes, err := s.quoteRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return quotes, nil
}

func (s *QuoteService) Create(ctx context.Context, req request_models.CreateQuoteRequest) (*db_models.Quote, error) {
	q := &db_models.Quote{Text: req.Text, Author: req.Author}
	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, dbError(err)
	}
	return q, nil
}

func (s *QuoteService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.quoteRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrQuoteNotFound
	}
	return nil
}
