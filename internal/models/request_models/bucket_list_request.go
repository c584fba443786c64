package request_models

type CreateBucketItemRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
}
