package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/pkg/utils"
)

// Gift is a letter. IsReceived doubles as the lock flag: false means locked.
type Gift struct {
	BaseModel
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	IsReceived  bool   `gorm:"default:false" json:"is_received"`
}

func (g *Gift) Locked() bool {
	return !g.IsReceived
}

// GiftView records that a user has opened a gift.
type GiftView struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_gift_views_user_gift" json:"user_id"`
	GiftID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_gift_views_user_gift" json:"gift_id"`
	CreatedAt int64     `gorm:"autoCreateTime" json:"created_at"`
}

func (v *GiftView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt == 0 {
		v.CreatedAt = utils.NowUnixSeconds()
	}
	return nil
}
