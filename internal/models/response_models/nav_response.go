package response_models

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

type NavResponse struct {
	Items       []NavItem `json:"items"`
	DisplayName string    `json:"display_name"`
	RoleLabel   string    `json:"role_label"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	UnreadGifts int       `json:"unread_gifts"`
}
