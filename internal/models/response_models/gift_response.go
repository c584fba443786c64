package response_models

type GiftResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	IsReceived  bool   `json:"is_received"`
	Locked      bool   `json:"locked"`
	Seen        bool   `json:"seen"`
	CreatedAt   int64  `json:"created_at"`
}

type UnreadGiftsResponse struct {
	Count   int      `json:"count"`
	GiftIDs []string `json:"gift_ids"`
}
