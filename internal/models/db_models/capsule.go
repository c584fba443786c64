package db_models

import "time"

type Capsule struct {
	BaseModel
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UnlockDate time.Time `json:"unlock_date"`
}

func (c *Capsule) LockedAt(now time.Time) bool {
	return now.Before(c.UnlockDate)
}
