package models

import "gorm.io/datatypes"

type Donation struct {
	BaseModel
	LocationID string `gorm:"index" json:"location_id"`
	PackageID  string `gorm:"index" json:"package_id"`
	// Nullable until the donor registers or logs in.
	UserID *string `gorm:"index" json:"user_id"`
	// Denormalized donor email, used for guest relinking even after the
	// donation has been associated with a user.
	Email     string         `gorm:"index;not null" json:"email"`
	TreeCount int            `json:"tree_count"`
	Amount    int64          `json:"amount"` // KZT, major unit
	Status    DonationStatus `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
	// Snapshot of the donor form at creation time.
	DonorInfo datatypes.JSON `json:"donor_info"`
	// ioka order id, set once a remote payment order has been created.
	PaymentOrderID *string `gorm:"index" json:"payment_order_id"`

	Location    *Location    `gorm:"foreignKey:LocationID" json:"-"`
	Package     *Package     `gorm:"foreignKey:PackageID" json:"-"`
	Certificate *Certificate `gorm:"foreignKey:DonationID" json:"-"`
}
