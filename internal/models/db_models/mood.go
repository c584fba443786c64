package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/pkg/utils"
)

const (
	MoodHappy   = "happy"
	MoodLove    = "love"
	MoodAngry   = "angry"
	MoodMissYou = "miss_you"
)

var Moods = []string{MoodHappy, MoodLove, MoodAngry, MoodMissYou}

func IsValidMood(m string) bool {
	for _, v := range Moods {
		if v == m {
			return true
		}
	}
	return false
}

// Mood rows are append-only; the latest row per user is that user's mood.
type Mood struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Mood      string    `json:"mood"`
	CreatedAt int64     `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Mood) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt == 0 {
		m.CreatedAt = utils.NowUnixSeconds()
	}
	return nil
}
