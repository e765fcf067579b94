package models

type InquiryKind string

const (
	InquiryKindContact     InquiryKind = "contact"
	InquiryKindPartnership InquiryKind = "partnership"
)

// Inquiry is an append-only record of contact and partnership submissions.
type Inquiry struct {
	BaseModel
	Kind    InquiryKind `gorm:"type:varchar(20);index" json:"kind"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Company string      `json:"company"`
	Message string      `json:"message"`
}
