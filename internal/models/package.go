package models

type Package struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	TreeCount   int    `json:"tree_count"`
	Price       int64  `json:"price"` // KZT, major unit
	Description string `json:"description"`
	Popular     bool   `json:"popular"`
}
