package services

import (
	"terek_backend/internal/appErrors"
	"terek_backend/internal/logger"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
)

// InquiryService records contact and partnership submissions. Append-only;
// admins read them, nobody edits them.
type InquiryService interface {
	Submit(req *dto.CreateInquiryRequest) (*models.Inquiry, error)
	ListAll(limit, offset int) ([]models.Inquiry, error)
}

type InquiryServiceImpl struct {
	inquiryRepo repositories.InquiryRepository
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository) InquiryService {
	return &InquiryServiceImpl{inquiryRepo: inquiryRepo}
}

func (s *InquiryServiceImpl) Submit(req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		Kind:    models.InquiryKind(req.Kind),
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("inquiry received", "kind", inquiry.Kind, "inquiry_id", inquiry.ID)
	return inquiry, nil
}

func (s *InquiryServiceImpl) ListAll(limit, offset int) ([]models.Inquiry, error) {
	inquiries, err := s.inquiryRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return inquiries, nil
}
