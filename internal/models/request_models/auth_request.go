package request_models

type SignInRequest struct {
	Email string `json:"email" binding:"required,email"`
	// Next is the path the magic link should land on after sign-in.
	Next string `json:"next"`
}

// VerifyOtpRequest accepts either the mailed code (with email) or the magic-link token.
type VerifyOtpRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Code  string `json:"code" binding:"omitempty,len=6,numeric"`
	Token string `json:"token"`
}

type PasswordSignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type GateUnlockRequest struct {
	Date string `json:"date" binding:"required"`
}
