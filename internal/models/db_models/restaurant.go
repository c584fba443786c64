package db_models

import "github.com/google/uuid"

type Restaurant struct {
	BaseModel
	Name     string `json:"name"`
	Cuisine  string `json:"cuisine"`
	Location string `json:"location"`
	ImageURL string `json:"image_url"`
}

type RestaurantReview struct {
	BaseModel
	RestaurantID uuid.UUID  `gorm:"type:uuid;index" json:"restaurant_id"`
	UserID       *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
}
