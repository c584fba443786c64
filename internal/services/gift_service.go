package services

import (
	"context"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/realtime"
	"vdpcza/pkg/utils"
)

type GiftServiceInterface interface {
	List(ctx context.Context, session *utils.Session) ([]response_models.GiftResponse, error)
	Open(ctx context.Context, session *utils.Session, id uuid.UUID) (*response_models.GiftResponse, error)
	Unread(ctx context.Context, userID uuid.UUID) (*response_models.UnreadGiftsResponse, error)

	Create(ctx context.Context, req request_models.CreateGiftRequest) (*db_models.Gift, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateGiftRequest) (*db_models.Gift, error)
	ToggleLock(ctx context.Context, id uuid.UUID) (*db_models.Gift, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GiftService struct {
	giftRepo  repositories.GiftRepository
	publisher realtime.Publisher
}

func NewGiftService(giftRepo repositories.GiftRepository, publisher realtime.Publisher) *GiftService {
	return &GiftService{giftRepo: giftRepo, publisher: publisher}
}

func toGiftResponse(g *db_models.Gift, seen, revealBody bool) response_models.GiftResponse {
	resp := response_models.GiftResponse{
		ID:         g.ID.String(),
		Title:      g.Title,
		IsReceived: g.IsReceived,
		Locked:     g.Locked(),
		Seen:       seen,
		CreatedAt:  g.CreatedAt,
	}
	if revealBody || !g.Locked() {
		resp.Description = g.Description
		resp.Link = g.Link
	}
	return resp
}

func (s *GiftService) seenSet(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids, err := s.giftRepo.ViewedGiftIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen, nil
}

func (s *GiftService) List(ctx context.Context, session *utils.Session) ([]response_models.GiftResponse, error) {
	gifts, err := s.giftRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	seen, err := s.seenSet(ctx, session.UserID)
	if err != nil {
		return nil, dbError(err)
	}

	out := make([]response_models.GiftResponse, 0, len(gifts))
	for i := range gifts {
		_, ok := seen[gifts[i].ID]
		out = append(out, toGiftResponse(&gifts[i], ok, session.IsAdmin()))
	}
	return out, nil
}

func (s *GiftService) Open(ctx context.Context, session *utils.Session, id uuid.UUID) (*response_models.GiftResponse, error) {
	gift, err := s.giftRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if gift == nil {
		return nil, utils.ErrGiftNotFound
	}
	if gift.Locked() && !session.IsAdmin() {
		return nil, utils.ErrGiftLocked
	}

	if err := s.giftRepo.MarkViewed(ctx, session.UserID, id); err != nil {
		return nil, dbError(err)
	}
	s.publisher.Publish(realtime.ChannelGifts, "gift.viewed", payload{"gift_id": id.String(), "user_id": session.UserID.String()})

	resp := toGiftResponse(gift, true, true)
	return &resp, nil
}

// Unread is every gift id minus the ones the user has opened.
func (s *GiftService) Unread(ctx context.Context, userID uuid.UUID) (*response_models.UnreadGiftsResponse, error) {
	gifts, err := s.giftRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	seen, err := s.seenSet(ctx, userID)
	if err != nil {
		return nil, dbError(err)
	}

	resp := &response_models.UnreadGiftsResponse{GiftIDs: []string{}}
	for _, g := range gifts {
		if _, ok := seen[g.ID]; !ok {
			resp.GiftIDs = append(resp.GiftIDs, g.ID.String())
		}
	}
	resp.Count = len(resp.GiftIDs)
	return resp, nil
}

func (s *GiftService) Create(ctx context.Context, req request_models.CreateGiftRequest) (*db_models.Gift, error) {
	gift := &db_models.Gift{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		IsReceived:  req.IsReceived,
	}
	if err := s.giftRepo.Create(ctx, gift); err != nil {
		return nil, dbError(err)
	}
	s.publisher.Publish(realtime.ChannelGifts, "gift.created", payload{"gift_id": gift.ID.String()})
	return gift, nil
}

func (s *GiftService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateGiftRequest) (*db_models.Gift, error) {
	gift, err := s.giftRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if gift == nil {
		return nil, utils.ErrGiftNotFound
	}

	if req.Title != nil {
		gift.Title = *req.Title
	}
	if req.Description != nil {
		gift.Description = *req.Description
	}
	if req.Link != nil {
		gift.Link = *req.Link
	}
	if req.IsReceived != nil {
		gift.IsReceived = *req.IsReceived
	}

	if err := s.giftRepo.Save(ctx, gift); err != nil {
		return nil, dbError(err)
	}
	s.publisher.Publish(realtime.ChannelGifts, "gift.updated", payload{"gift_id": id.String()})
	return gift, nil
}

func (s *GiftService) ToggleLock(ctx context.Context, id uuid.UUID) (*db_models.Gift, error) {
	gift, err := s.giftRepo.ToggleReceived(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if gift == nil {
		return nil, utils.ErrGiftNotFound
	}
	s.publisher.Publish(realtime.ChannelGifts, "gift.updated", payload{"gift_id": id.String(), "is_received": gift.IsReceived})
	return gift, nil
}

func (s *GiftService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.giftRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrGiftNotFound
	}
	s.publisher.Publish(realtime.ChannelGifts, "gift.deleted", payload{"gift_id": id.String()})
	return nil
}
