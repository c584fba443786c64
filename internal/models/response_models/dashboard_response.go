package response_models

import "vdpcza/pkg/utils"

type CounterResponse struct {
	Since               string        `json:"since"`
	Elapsed             utils.Elapsed `json:"elapsed"`
	RefreshAfterSeconds int           `json:"refresh_after_seconds"`
}

type QuoteResponse struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type MoodResponse struct {
	UserID    string `json:"user_id"`
	Mood      string `json:"mood"`
	CreatedAt int64  `json:"created_at"`
}

type DashboardResponse struct {
	Counter     CounterResponse         `json:"counter"`
	Quote       QuoteResponse           `json:"quote"`
	Trivia      *TriviaQuestionResponse `json:"trivia"`
	MyMood      *MoodResponse           `json:"my_mood"`
	PartnerMood *MoodResponse           `json:"partner_mood"`
}
