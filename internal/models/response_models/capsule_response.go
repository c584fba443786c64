package response_models

type CapsuleResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	UnlockDate string `json:"unlock_date"`
	Locked     bool   `json:"locked"`
	Remaining  string `json:"remaining,omitempty"`
}
