package request_models

type CreateQuoteRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}
