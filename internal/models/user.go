package models

import "time"

type User struct {
	BaseModel
	FullName      string        `json:"full_name"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string        `gorm:"not null" json:"-"`
	Phone         string        `json:"phone"`
	CompanyName   string        `json:"company_name"`
	Role          UserRole      `gorm:"type:varchar(20);default:'user'" json:"role"`
	AccountStatus AccountStatus `gorm:"type:varchar(20);default:'active'" json:"account_status"`
	LastLogin     *time.Time    `json:"last_login"`

	Donations []Donation `gorm:"foreignKey:UserID" json:"-"`
}

// IsGuest reports whether the account was created implicitly from a
// donation and has never set a real password.
func (u *User) IsGuest() bool {
	return u.AccountStatus == AccountStatusGuest
}
