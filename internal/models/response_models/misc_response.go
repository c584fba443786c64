package response_models

type PlaylistResponse struct {
	SpotifyEmbedURL string `json:"spotify_embed_url,omitempty"`
	YouTubeEmbedURL string `json:"youtube_embed_url,omitempty"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	// Source is the provider name, or "canned" for the built-in replies.
	Source string `json:"source"`
}

type RestaurantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Location    string  `json:"location"`
	ImageURL    string  `json:"image_url"`
	ReviewCount int     `json:"review_count"`
	AvgRating   float64 `json:"avg_rating"`
	CreatedAt   int64   `json:"created_at"`
}
