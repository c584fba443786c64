package db_models

type Quote struct {
	BaseModel
	Text   string `json:"text"`
	Author string `json:"author"`
}
