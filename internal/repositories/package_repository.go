package repositories

import (
	"errors"

	"terek_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageRepository interface {
	FindAll() ([]models.Package, error)
	FindByID(id string) (*models.Package, error)
	Create(pkg *models.Package) error
	Save(pkg *models.Package) error
	Delete(id string) error
}

type PackageRepositoryImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &PackageRepositoryImpl{db: db}
}

func (r *PackageRepositoryImpl) FindAll() ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Order("price").Find(&packages).Error
	return packages, err
}

func (r *PackageRepositoryImpl) FindByID(id string) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

func (r *PackageRepositoryImpl) Save(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}

func (r *PackageRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}
