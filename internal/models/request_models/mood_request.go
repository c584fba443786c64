package request_models

type SetMoodRequest struct {
	Mood string `json:"mood" binding:"required"`
}
