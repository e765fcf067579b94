package repositories

import (
	"errors"

	"terek_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateRepository interface {
	// CreateIfAbsent inserts the certificate unless one already exists for
	// its donation. Insert-or-ignore on the donation_id unique index keeps
	// concurrent issuers from ever creating two rows.
	CreateIfAbsent(cert *models.Certificate) (bool, error)
	FindByDonation(donationID string) (*models.Certificate, error)
	FindByUser(userID string) ([]models.Certificate, error)
	FindAll(limit, offset int) ([]models.Certificate, error)
}

type CertificateRepositoryImpl struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &CertificateRepositoryImpl{db: db}
}

func (r *CertificateRepositoryImpl) CreateIfAbsent(cert *models.Certificate) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "donation_id"}},
		DoNothing: true,
	}).Create(cert)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CertificateRepositoryImpl) FindByDonation(donationID string) (*models.Certificate, error) {
	var cert models.Certificate
	err := r.db.First(&cert, "donation_id = ?", donationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepositoryImpl) FindByUser(userID string) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := r.db.
		Joins("JOIN donations ON donations.id = certificates.donation_id").
		Where("donations.user_id = ?", userID).
		Order("certificates.created_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepositoryImpl) FindAll(limit, offset int) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&certs).Error
	return certs, err
}
