package request_models

type CreateTripRequest struct {
	DestinationName string   `json:"destination_name" binding:"required,max=200"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	ImageURL        string   `json:"image_url" binding:"omitempty,url"`
	HotelInfo       string   `json:"hotel_info"`
	IsRevealed      bool     `json:"is_revealed"`
	Lat             *float64 `json:"lat" binding:"omitempty,latitude"`
	Lng             *float64 `json:"lng" binding:"omitempty,longitude"`
}

type UpdateTripRequest struct {
	DestinationName *string  `json:"destination_name" binding:"omitempty,max=200"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	ImageURL        *string  `json:"image_url"`
	HotelInfo       *string  `json:"hotel_info"`
	IsRevealed      *bool    `json:"is_revealed"`
	Lat             *float64 `json:"lat" binding:"omitempty,latitude"`
	Lng             *float64 `json:"lng" binding:"omitempty,longitude"`
	SortOrder       *int     `json:"sort_order"`
}
