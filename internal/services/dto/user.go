package dto

import "time"

type UserProfile struct {
	ID            string     `json:"id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	CompanyName   string     `json:"company_name,omitempty"`
	Role          string     `json:"role"`
	AccountStatus string     `json:"account_status"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=100"`
}

// AdminUpdateUserRequest is the admin-side partial update. Nil fields are
// left untouched.
type AdminUpdateUserRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=100"`
	Role        *string `json:"role" validate:"omitempty,is-user-role"`
}

type UserListResponse struct {
	Users []UserProfile `json:"users"`
	Total int64         `json:"total"`
}
