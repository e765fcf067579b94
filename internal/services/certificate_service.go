package services

import (
	"terek_backend/internal/appErrors"
	"terek_backend/internal/certificates"
	"terek_backend/internal/logger"
	"terek_backend/internal/models"
	"terek_backend/internal/notify"
	"terek_backend/internal/repositories"
)

// CertificateService issues at most one certificate per completed donation.
type CertificateService interface {
	// EnsureCertificate is safe to call any number of times, from webhooks
	// and polls concurrently; the donation_id uniqueness in storage is the
	// final arbiter.
	EnsureCertificate(donation *models.Donation) (*models.Certificate, error)
	GetByDonation(donationID string) (*models.Certificate, error)
	ListForUser(userID string) ([]models.Certificate, error)
	ListAll(limit, offset int) ([]models.Certificate, error)
}

type CertificateServiceImpl struct {
	certRepo repositories.CertificateRepository
	renderer certificates.Renderer
	mailer   notify.Mailer
	// Fallback URL prefix when rendering is unavailable.
	baseURL string
}

func NewCertificateService(
	certRepo repositories.CertificateRepository,
	renderer certificates.Renderer,
	mailer notify.Mailer,
	baseURL string,
) CertificateService {
	return &CertificateServiceImpl{
		certRepo: certRepo,
		renderer: renderer,
		mailer:   mailer,
		baseURL:  baseURL,
	}
}

func (s *CertificateServiceImpl) EnsureCertificate(donation *models.Donation) (*models.Certificate, error) {
	existing, err := s.certRepo.FindByDonation(donation.ID)
	if err == nil {
		return existing, nil
	}
	if !appErrors.Is(err, repositories.ErrCertificateNotFound) {
		return nil, appErrors.InternalError(err)
	}

	url, err := s.renderer.Render(donation)
	if err != nil {
		logger.WithError(err).Warn("certificate rendering failed, using fallback URL", "donation_id", donation.ID)
		url = nil
	}
	if url == nil {
		fallback := s.baseURL + "/" + donation.ID + ".png"
		url = &fallback
	}

	cert := &models.Certificate{
		DonationID: donation.ID,
		PDFURL:     url,
	}

	created, err := s.certRepo.CreateIfAbsent(cert)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if !created {
		// A concurrent issuer won the insert; theirs is canonical.
		return s.certRepo.FindByDonation(donation.ID)
	}

	logger.Info("certificate issued", "donation_id", donation.ID)

	if err := s.mailer.SendCertificateReady(donation, *url); err != nil {
		logger.WithError(err).Warn("certificate email failed", "donation_id", donation.ID)
	}

	return cert, nil
}

func (s *CertificateServiceImpl) GetByDonation(donationID string) (*models.Certificate, error) {
	cert, err := s.certRepo.FindByDonation(donationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrCertificateNotFound) {
			return nil, appErrors.ErrCertificateNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return cert, nil
}

func (s *CertificateServiceImpl) ListForUser(userID string) ([]models.Certificate, error) {
	certs, err := s.certRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return certs, nil
}

func (s *CertificateServiceImpl) ListAll(limit, offset int) ([]models.Certificate, error) {
	certs, err := s.certRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return certs, nil
}
