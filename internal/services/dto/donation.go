package dto

import "time"

// CreateDonationRequest covers both authenticated and guest checkouts. For
// guests the email anchors the donation until an account exists. TreeCount
// and Amount are taken as sent; when omitted they default from the package.
type CreateDonationRequest struct {
	LocationID string            `json:"location_id" validate:"required,uuid"`
	PackageID  string            `json:"package_id" validate:"required,uuid"`
	Email      string            `json:"email" validate:"required,email"`
	TreeCount  int               `json:"tree_count" validate:"omitempty,min=1"`
	Amount     int64             `json:"amount" validate:"omitempty,min=1"`
	DonorInfo  map[string]string `json:"donor_info" validate:"omitempty"`
}

type DonationResponse struct {
	ID             string            `json:"id"`
	LocationID     string            `json:"location_id"`
	LocationName   string            `json:"location_name,omitempty"`
	PackageID      string            `json:"package_id"`
	Email          string            `json:"email"`
	TreeCount      int               `json:"tree_count"`
	Amount         int64             `json:"amount"`
	Status         string            `json:"status"`
	DonorInfo      map[string]string `json:"donor_info,omitempty"`
	PaymentOrderID *string           `json:"payment_order_id,omitempty"`
	CertificateURL *string           `json:"certificate_url,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// InitiatePaymentResponse is returned from the payment initiation endpoint.
// CheckoutURL is empty when the gateway is disabled and the donation was
// completed through the bypass path.
type InitiatePaymentResponse struct {
	DonationID  string `json:"donation_id"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkout_url,omitempty"`
	Bypassed    bool   `json:"bypassed"`
}

// DonationStatusResponse is the poll payload the frontend reads while the
// donor waits on the payment page.
type DonationStatusResponse struct {
	DonationID           string  `json:"donation_id"`
	Status               string  `json:"status"`
	CertificateAvailable bool    `json:"certificate_available"`
	CertificateURL       *string `json:"certificate_url,omitempty"`
	HasAccount           bool    `json:"has_account"`
	IsGuest              bool    `json:"is_guest"`
}

type RefundRequest struct {
	// Amount in tenge; nil refunds the full order.
	Amount *int64 `json:"amount" validate:"omitempty,min=1"`
}

type AdminUpdateDonationRequest struct {
	Status *string `json:"status" validate:"omitempty,is-donation-status"`
}
