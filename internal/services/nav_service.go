package services

import (
	"context"

	"go.uber.org/zap"
	"vdpcza/internal/models/response_models"
	"vdpcza/pkg/utils"
)

var navItems = []response_models.NavItem{
	{ID: "home", Label: "Home", Path: "/", Icon: "home"},
	{ID: "travel", Label: "Viajes", Path: "/travel", Icon: "plane"},
	{ID: "memories", Label: "Recuerdos", Path: "/memories", Icon: "camera"},
	{ID: "playlist", Label: "Música", Path: "/playlist", Icon: "music"},
}

type NavServiceInterface interface {
	Get(ctx context.Context, session *utils.Session) response_models.NavResponse
}

type NavService struct {
	gifts GiftServiceInterface
	log   *zap.Logger
}

func NewNavService(gifts GiftServiceInterface, log *zap.Logger) *NavService {
	return &NavService{gifts: gifts, log: log.Named("nav")}
}

// Get builds the chrome for the signed-in user. A failed unread count shows as zero.
func (n *NavService) Get(ctx context.Context, session *utils.Session) response_models.NavResponse {
	roleLabel := "Vale"
	if session.IsAdmin() {
		roleLabel = "Admin"
	}

	resp := response_models.NavResponse{
		Items:       append([]response_models.NavItem(nil), navItems...),
		DisplayName: session.DisplayName,
		RoleLabel:   roleLabel,
		AvatarURL:   session.AvatarURL,
		IsAdmin:     session.IsAdmin(),
	}

	unread, err := n.gifts.Unread(ctx, session.UserID)
	if err != nil {
		n.log.Warn("unread gifts", zap.Error(err))
		return resp
	}
	resp.UnreadGifts = unread.Count
	return resp
}
