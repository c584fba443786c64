package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/realtime"
	"vdpcza/pkg/utils"
)

const recentMoodsLimit = 20

// MoodBoard is the in-memory view of each user's current mood. Writes are
// applied here first and rolled back if the insert fails.
type MoodBoard struct {
	mu      sync.Mutex
	current map[uuid.UUID]string
}

func NewMoodBoard() *MoodBoard {
	return &MoodBoard{current: make(map[uuid.UUID]string)}
}

func (b *MoodBoard) Current(userID uuid.UUID) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.current[userID]
	return m, ok
}

// seed records a mood read from the store unless a newer local value exists.
func (b *MoodBoard) seed(userID uuid.UUID, mood string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.current[userID]; !ok {
		b.current[userID] = mood
	}
}

// Swap sets mood unless it is already current, and returns what it replaced.
// The compare and the write happen under one lock, so of several identical
// concurrent calls only one reports changed.
func (b *MoodBoard) Swap(userID uuid.UUID, mood string) (prev string, hadPrev, changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, hadPrev = b.current[userID]
	if hadPrev && prev == mood {
		return prev, true, false
	}
	b.current[userID] = mood
	return prev, hadPrev, true
}

// Restore undoes a Swap, unless another write has landed since.
func (b *MoodBoard) Restore(userID uuid.UUID, patched, prev string, hadPrev bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current[userID] != patched {
		return
	}
	if hadPrev {
		b.current[userID] = prev
	} else {
		delete(b.current, userID)
	}
}

type MoodServiceInterface interface {
	Recent(ctx context.Context) ([]response_models.MoodResponse, error)
	Set(ctx context.Context, userID uuid.UUID, mood string) (*response_models.MoodResponse, error)
	// Pair returns the latest mood of the caller and of anyone else.
	Pair(ctx context.Context, userID uuid.UUID) (mine, partner *response_models.MoodResponse, err error)
}

type MoodService struct {
	moodRepo  repositories.MoodRepository
	board     *MoodBoard
	publisher realtime.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewMoodService(moodRepo repositories.MoodRepository, board *MoodBoard, publisher realtime.Publisher, log *zap.Logger) *MoodService {
	return &MoodService{
		moodRepo:  moodRepo,
		board:     board,
		publisher: publisher,
		log:       log.Named("mood"),
		now:       time.Now,
	}
}

func toMoodResponse(m *db_models.Mood) *response_models.MoodResponse {
	return &response_models.MoodResponse{
		UserID:    m.UserID.String(),
		Mood:      m.Mood,
		CreatedAt: m.CreatedAt,
	}
}

func (s *MoodService) Recent(ctx context.Context) ([]response_models.MoodResponse, error) {
	moods, err := s.moodRepo.Recent(ctx, recentMoodsLimit)
	if err != nil {
		return nil, dbError(err)
	}
	out := make([]response_models.MoodResponse, 0, len(moods))
	for i := range moods {
		out = append(out, *toMoodResponse(&moods[i]))
	}
	return out, nil
}

func (s *MoodService) Pair(ctx context.Context, userID uuid.UUID) (*response_models.MoodResponse, *response_models.MoodResponse, error) {
	moods, err := s.moodRepo.Recent(ctx, recentMoodsLimit)
	if err != nil {
		return nil, nil, dbError(err)
	}

	var mine, partner *response_models.MoodResponse
	for i := range moods {
		m := &moods[i]
		switch {
		case m.UserID == userID && mine == nil:
			mine = toMoodResponse(m)
		case m.UserID != userID && partner == nil:
			partner = toMoodResponse(m)
		}
		if mine != nil && partner != nil {
			break
		}
	}
	return mine, partner, nil
}

// loadMood seeds the board with the stored mood the first time a user is seen.
func (s *MoodService) loadMood(ctx context.Context, userID uuid.UUID) error {
	if _, ok := s.board.Current(userID); ok {
		return nil
	}
	latest, err := s.moodRepo.LatestForUser(ctx, userID)
	if err != nil {
		return err
	}
	if latest != nil {
		s.board.seed(userID, latest.Mood)
	}
	return nil
}

// Set records a new mood. Picking the mood that is already current is a no-op
// and returns nil.
func (s *MoodService) Set(ctx context.Context, userID uuid.UUID, mood string) (*response_models.MoodResponse, error) {
	if !db_models.IsValidMood(mood) {
		return nil, utils.ErrInvalidMood
	}

	if err := s.loadMood(ctx, userID); err != nil {
		return nil, dbError(err)
	}
	prev, hadPrev, changed := s.board.Swap(userID, mood)
	if !changed {
		return nil, nil
	}

	row := &db_models.Mood{ID: uuid.New(), UserID: userID, Mood: mood, CreatedAt: s.now().Unix()}
	pending := toMoodResponse(row)
	s.publisher.Publish(realtime.ChannelMoods, "mood.pending", pending)

	if err := s.moodRepo.Insert(ctx, row); err != nil {
		s.board.Restore(userID, mood, prev, hadPrev)
		s.publisher.Publish(realtime.ChannelMoods, "mood.rolled_back", payload{
			"user_id": userID.String(),
			"mood":    prev,
		})
		s.log.Warn("mood insert failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, dbError(err)
	}

	confirmed := toMoodResponse(row)
	s.publisher.Publish(realtime.ChannelMoods, "mood.confirmed", confirmed)
	return confirmed, nil
}
