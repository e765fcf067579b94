package dto

type CreateNewsRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=200"`
	Content   string `json:"content" validate:"required"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Published bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=2,max=200"`
	Content   *string `json:"content" validate:"omitempty"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	Published *bool   `json:"published"`
}
