package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Album struct {
	BaseModel
	Name     string `json:"name"`
	CoverURL string `json:"cover_url"`
}

type Memory struct {
	BaseModel
	ImageURL    string     `json:"image_url"`
	StorageKey  string     `json:"-"`
	Date        time.Time  `gorm:"type:date" json:"date"`
	Description string     `json:"description"`
	AlbumID     *uuid.UUID `gorm:"type:uuid;index" json:"album_id"`
	UploadedBy  *uuid.UUID `gorm:"type:uuid" json:"uploaded_by,omitempty"`
}
