package handlers

import (
	"terek_backend/internal/services"
	"terek_backend/internal/validator"
)

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	DonationHandler *DonationHandler
	WebhookHandler  *WebhookHandler
	CatalogHandler  *CatalogHandler
	NewsHandler     *NewsHandler
	InquiryHandler  *InquiryHandler
	AdminHandler    *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, svc.IdentityService),
		UserHandler:     NewUserHandler(base, svc.UserService, svc.CertificateService),
		DonationHandler: NewDonationHandler(base, svc.DonationService, svc.PaymentService),
		WebhookHandler:  NewWebhookHandler(base, svc.PaymentService, svc.Gateway),
		CatalogHandler:  NewCatalogHandler(base, svc.LocationService, svc.PackageService),
		NewsHandler:     NewNewsHandler(base, svc.NewsService),
		InquiryHandler:  NewInquiryHandler(base, svc.InquiryService),
		AdminHandler: NewAdminHandler(
			base,
			svc.UserService,
			svc.DonationService,
			svc.PaymentService,
			svc.LocationService,
			svc.PackageService,
			svc.NewsService,
			svc.InquiryService,
		),
	}
}
