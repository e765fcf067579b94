package repositories

import (
	"errors"

	"terek_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news article not found")

type NewsRepository interface {
	FindPublished() ([]models.News, error)
	FindAll() ([]models.News, error)
	FindByID(id string) (*models.News, error)
	Create(article *models.News) error
	Save(article *models.News) error
	Delete(id string) error
}

type NewsRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &NewsRepositoryImpl{db: db}
}

func (r *NewsRepositoryImpl) FindPublished() ([]models.News, error) {
	var articles []models.News
	err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&articles).Error
	return articles, err
}

func (r *NewsRepositoryImpl) FindAll() ([]models.News, error) {
	var articles []models.News
	err := r.db.Order("created_at DESC").Find(&articles).Error
	return articles, err
}

func (r *NewsRepositoryImpl) FindByID(id string) (*models.News, error) {
	var article models.News
	err := r.db.First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *NewsRepositoryImpl) Create(article *models.News) error {
	return r.db.Create(article).Error
}

func (r *NewsRepositoryImpl) Save(article *models.News) error {
	return r.db.Save(article).Error
}

func (r *NewsRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.News{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}
