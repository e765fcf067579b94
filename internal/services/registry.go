package services

import (
	"terek_backend/internal/certificates"
	"terek_backend/internal/config"
	"terek_backend/internal/gateway/ioka"
	"terek_backend/internal/notify"
	"terek_backend/internal/repositories"
	"terek_backend/ws"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	IdentityService    IdentityService
	UserService        UserService
	DonationService    DonationService
	PaymentService     PaymentService
	CertificateService CertificateService
	LocationService    LocationService
	PackageService     PackageService
	NewsService        NewsService
	InquiryService     InquiryService
	Gateway            ioka.Gateway
}

func NewServiceContainer(
	cfg *config.Config,
	repos *repositories.Registry,
	renderer certificates.Renderer,
	mailer notify.Mailer,
	feed *ws.FeedManager,
) *ServiceContainer {
	gateway := ioka.NewGateway(cfg)

	identity := NewIdentityService(repos.Users, repos.Donations)
	certSvc := NewCertificateService(repos.Certificates, renderer, mailer, cfg.Certificates.BaseURL)

	return &ServiceContainer{
		IdentityService:    identity,
		UserService:        NewUserService(repos.Users),
		DonationService:    NewDonationService(repos.Donations, repos.Locations, repos.Packages, identity),
		PaymentService:     NewPaymentService(repos.Donations, repos.Users, gateway, certSvc, feed),
		CertificateService: certSvc,
		LocationService:    NewLocationService(repos.Locations),
		PackageService:     NewPackageService(repos.Packages),
		NewsService:        NewNewsService(repos.News),
		InquiryService:     NewInquiryService(repos.Inquiries),
		Gateway:            gateway,
	}
}
