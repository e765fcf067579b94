package repositories

import (
	"terek_backend/internal/models"

	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	FindAll(limit, offset int) ([]models.Inquiry, error)
}

type InquiryRepositoryImpl struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &InquiryRepositoryImpl{db: db}
}

func (r *InquiryRepositoryImpl) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

func (r *InquiryRepositoryImpl) FindAll(limit, offset int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&inquiries).Error
	return inquiries, err
}
