package db_models

import "github.com/lib/pq"

type TriviaQuestion struct {
	BaseModel
	Question      string         `json:"question"`
	Options       pq.StringArray `gorm:"type:text[]" json:"options"`
	CorrectAnswer string         `json:"correct_answer"`
}
