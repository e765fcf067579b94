package repositories

import (
	"errors"

	"terek_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationRepository interface {
	FindAll() ([]models.Location, error)
	FindByID(id string) (*models.Location, error)
	Create(location *models.Location) error
	Save(location *models.Location) error
	Delete(id string) error
}

type LocationRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) FindAll() ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Order("name").Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) FindByID(id string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

func (r *LocationRepositoryImpl) Save(location *models.Location) error {
	return r.db.Save(location).Error
}

func (r *LocationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Location{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}
