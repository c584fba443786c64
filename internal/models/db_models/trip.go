package db_models

import "time"

type Trip struct {
	BaseModel
	DestinationName string     `json:"destination_name"`
	StartDate       *time.Time `gorm:"type:date" json:"start_date"`
	EndDate         *time.Time `gorm:"type:date" json:"end_date"`
	ImageURL        string     `json:"image_url"`
	HotelInfo       string     `json:"hotel_info"`
	IsRevealed      bool       `gorm:"default:false" json:"is_revealed"`
	Lat             *float64   `json:"lat"`
	Lng             *float64   `json:"lng"`
	SortOrder       int        `gorm:"default:0" json:"sort_order"`
}

func (t *Trip) HasCoordinates() bool {
	return t.Lat != nil && t.Lng != nil
}
