package models

type Location struct {
	BaseModel
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	AreaHectares  float64 `json:"area_hectares"`
	Coordinates   string  `json:"coordinates"`
	ImageURL      string  `json:"image_url"`
	Status        string  `gorm:"type:varchar(20);default:'active'" json:"status"`
	CapacityTrees int     `json:"capacity_trees"`
	// Maintained independently of linked donations' tree counts.
	PlantedTrees int `json:"planted_trees"`
}
