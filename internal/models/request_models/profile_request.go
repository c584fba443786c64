package request_models

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=120"`
	Bio      *string `json:"bio" binding:"omitempty,max=1000"`
}
