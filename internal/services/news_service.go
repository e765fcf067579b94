package services

import (
	"terek_backend/internal/appErrors"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
)

type NewsService interface {
	// ListPublished is the public feed; drafts stay admin-only.
	ListPublished() ([]models.News, error)
	ListAll() ([]models.News, error)
	Get(id string) (*models.News, error)
	Create(req *dto.CreateNewsRequest) (*models.News, error)
	Update(id string, req *dto.UpdateNewsRequest) (*models.News, error)
	Delete(id string) error
}

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

func (s *NewsServiceImpl) ListPublished() ([]models.News, error) {
	articles, err := s.newsRepo.FindPublished()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return articles, nil
}

func (s *NewsServiceImpl) ListAll() ([]models.News, error) {
	articles, err := s.newsRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return articles, nil
}

func (s *NewsServiceImpl) Get(id string) (*models.News, error) {
	article, err := s.newsRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, appErrors.ErrNewsNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) Create(req *dto.CreateNewsRequest) (*models.News, error) {
	article := &models.News{
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if err := s.newsRepo.Create(article); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) Update(id string, req *dto.UpdateNewsRequest) (*models.News, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.ImageURL != nil {
		article.ImageURL = *req.ImageURL
	}
	if req.Published != nil {
		article.Published = *req.Published
	}

	if err := s.newsRepo.Save(article); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) Delete(id string) error {
	if err := s.newsRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrNewsNotFound) {
			return appErrors.ErrNewsNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
