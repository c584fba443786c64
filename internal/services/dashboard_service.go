package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"vdpcza/internal/models/response_models"
	"vdpcza/pkg/utils"
)

const counterRefreshSeconds = 60

type DashboardServiceInterface interface {
	Get(ctx context.Context, session *utils.Session) (*response_models.DashboardResponse, error)
	Counter() response_models.CounterResponse
}

type DashboardService struct {
	quotes  QuoteServiceInterface
	trivia  TriviaServiceInterface
	moods   MoodServiceInterface
	keyDate time.Time
	log     *zap.Logger
	now     func() time.Time
}

func NewDashboardService(
	quotes QuoteServiceInterface,
	trivia TriviaServiceInterface,
	moods MoodServiceInterface,
	keyDate time.Time,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		quotes:  quotes,
		trivia:  trivia,
		moods:   moods,
		keyDate: keyDate,
		log:     log.Named("dashboard"),
		now:     time.Now,
	}
}

func (s *DashboardService) Counter() response_models.CounterResponse {
	return response_models.CounterResponse{
		Since:               s.keyDate.Format(time.RFC3339),
		Elapsed:             utils.ElapsedSince(s.keyDate, s.now()),
		RefreshAfterSeconds: counterRefreshSeconds,
	}
}

// Get reads every widget concurrently. A widget that fails to load is left
// empty instead of failing the whole screen.
func (s *DashboardService) Get(ctx context.Context, session *utils.Session) (*response_models.DashboardResponse, error) {
	resp := &response_models.DashboardResponse{Counter: s.Counter()}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp.Quote = s.quotes.Random(gctx)
		return nil
	})

	g.Go(func() error {
		q, err := s.trivia.Today(gctx)
		if err != nil {
			s.log.Warn("trivia unavailable", zap.Error(err))
			return nil
		}
		resp.Trivia = q
		return nil
	})

	g.Go(func() error {
		mine, partner, err := s.moods.Pair(gctx, session.UserID)
		if err != nil {
			s.log.Warn("moods unavailable", zap.Error(err))
			return nil
		}
		resp.MyMood, resp.PartnerMood = mine, partner
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
