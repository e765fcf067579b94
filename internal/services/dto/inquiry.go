package dto

type CreateInquiryRequest struct {
	Kind    string `json:"kind" validate:"required,is-inquiry-kind"`
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,max=5000"`
}
