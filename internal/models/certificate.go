package models

// Certificate records the issued proof for a completed donation. The unique
// index on DonationID is the correctness backstop for concurrent issuance:
// at most one row can ever exist per donation.
type Certificate struct {
	BaseModel
	DonationID string `gorm:"uniqueIndex;not null" json:"donation_id"`
	// Nullable when rendering was unavailable at issuance time.
	PDFURL *string `json:"pdf_url"`
}
