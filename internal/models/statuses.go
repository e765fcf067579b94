package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type AccountStatus string

const (
	// AccountStatusActive is a password-authenticated account.
	AccountStatusActive AccountStatus = "active"
	// AccountStatusGuest anchors donations to an email before registration.
	AccountStatusGuest AccountStatus = "guest"
)

type DonationStatus string

const (
	DonationStatusPending         DonationStatus = "pending"
	DonationStatusAwaitingPayment DonationStatus = "awaiting_payment"
	DonationStatusCompleted       DonationStatus = "completed"
	DonationStatusFailed          DonationStatus = "failed"
	DonationStatusCancelled       DonationStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s DonationStatus) IsTerminal() bool {
	switch s {
	case DonationStatusCompleted, DonationStatusFailed, DonationStatusCancelled:
		return true
	}
	return false
}
