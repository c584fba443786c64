package request_models

type RestaurantRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Cuisine  string `json:"cuisine"`
	Location string `json:"location"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
