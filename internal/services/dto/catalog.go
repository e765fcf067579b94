package dto

type CreateLocationRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=2000"`
	AreaHectares  float64 `json:"area_hectares" validate:"omitempty,min=0"`
	Coordinates   string  `json:"coordinates" validate:"omitempty,max=100"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	CapacityTrees int     `json:"capacity_trees" validate:"omitempty,min=0"`
}

type UpdateLocationRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	AreaHectares  *float64 `json:"area_hectares" validate:"omitempty,min=0"`
	Coordinates   *string  `json:"coordinates" validate:"omitempty,max=100"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,url"`
	Status        *string  `json:"status" validate:"omitempty,oneof=active inactive full"`
	CapacityTrees *int     `json:"capacity_trees" validate:"omitempty,min=0"`
	PlantedTrees  *int     `json:"planted_trees" validate:"omitempty,min=0"`
}

type CreatePackageRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	TreeCount   int    `json:"tree_count" validate:"required,min=1"`
	Price       int64  `json:"price" validate:"required,min=1"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Popular     bool   `json:"popular"`
}

type UpdatePackageRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	TreeCount   *int    `json:"tree_count" validate:"omitempty,min=1"`
	Price       *int64  `json:"price" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Popular     *bool   `json:"popular"`
}
