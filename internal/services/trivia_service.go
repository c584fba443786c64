package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/utils"
)

type TriviaServiceInterface interface {
	// Today returns nil when there are no questions.
	Today(ctx context.Context) (*response_models.TriviaQuestionResponse, error)
	Answer(ctx context.Context, req request_models.TriviaAnswerRequest) (*response_models.TriviaAnswerResponse, error)
	List(ctx context.Context) ([]db_models.TriviaQuestion, error)
	Create(ctx context.Context, req request_models.CreateTriviaRequest) (*db_models.TriviaQuestion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TriviaService struct {
	triviaRepo repositories.TriviaRepository
	loc        *time.Location
	now        func() time.Time
}

func NewTriviaService(triviaRepo repositories.TriviaRepository, loc *time.Location) *TriviaService {
	return &TriviaService{triviaRepo: triviaRepo, loc: loc, now: time.Now}
}

func (s *TriviaService) Today(ctx context.Context) (*response_models.TriviaQuestionResponse, error) {
	questions, err := s.triviaRepo.ListOrdered(ctx)
	if err != nil {
		return nil, dbError(err)
	}

	day := utils.DayString(s.now(), s.loc)
	idx := utils.DailyIndex(day, len(questions))
	if idx < 0 {
		return nil, nil
	}

	q := questions[idx]
	return &response_models.TriviaQuestionResponse{
		ID:       q.ID.String(),
		Question: q.Question,
		Options:  append([]string(nil), q.Options...),
		Day:      day,
	}, nil
}

func (s *TriviaService) Answer(ctx context.Context, req request_models.TriviaAnswerRequest) (*response_models.TriviaAnswerResponse, error) {
	id, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	q, err := s.triviaRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if q == nil {
		return nil, utils.ErrTriviaNotFound
	}
	return &response_models.TriviaAnswerResponse{
		Correct:       req.Answer == q.CorrectAnswer,
		CorrectAnswer: q.CorrectAnswer,
	}, nil
}

func (s *TriviaService) List(ctx context.Context) ([]db_models.TriviaQuestion, error) {
	questions, err := s.triviaRepo.ListOrdered(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return questions, nil
}

func (s *TriviaService) Create(ctx context.Context, req request_models.CreateTriviaRequest) (*db_models.TriviaQuestion, error) {
	found := false
	for _, o := range req.Options {
		if o == req.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: correct answer must be one of the options", utils.ErrInvalidInput)
	}

	q := &db_models.TriviaQuestion{
		Question:      strings.TrimSpace(req.Question),
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.triviaRepo.Create(ctx, q); err != nil {
		return nil, dbError(err)
	}
	return q, nil
}

func (s *TriviaService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.triviaRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrTriviaNotFound
	}
	return nil
}
