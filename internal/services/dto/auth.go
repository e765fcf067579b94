package dto

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	// GuestID targets a known guest account for the upgrade, letting the
	// donor register under a different email than the one on the donation.
	GuestID string `json:"guest_id" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
	// IsUpgrade is set when registration promoted an existing guest account
	// instead of creating a new one.
	IsUpgrade bool `json:"is_upgrade"`
	// Number of guest donations attached to the account during this call.
	RelinkedDonations int64 `json:"relinked_donations"`
}
