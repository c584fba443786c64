package request_models

type CreateCapsuleRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	UnlockDate string `json:"unlock_date" binding:"required"`
}
