package request_models

type CreateGiftRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"omitempty,url"`
	IsReceived  bool   `json:"is_received"`
}

type UpdateGiftRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	IsReceived  *bool   `json:"is_received"`
}
