package db_models

type BucketListItem struct {
	BaseModel
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `gorm:"default:false" json:"is_completed"`
}

func (BucketListItem) TableName() string {
	return "bucket_list"
}
