package models

type News struct {
	BaseModel
	Title     string `gorm:"not null" json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	Published bool   `gorm:"default:true" json:"published"`
}
