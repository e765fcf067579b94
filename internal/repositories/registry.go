package repositories

import "gorm.io/gorm"

// Registry holds all repositories bound to one database handle.
type Registry struct {
	Users        UserRepository
	Donations    DonationRepository
	Certificates CertificateRepository
	Locations    LocationRepository
	Packages     PackageRepository
	News         NewsRepository
	Inquiries    InquiryRepository
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Users:        NewUserRepository(db),
		Donations:    NewDonationRepository(db),
		Certificates: NewCertificateRepository(db),
		Locations:    NewLocationRepository(db),
		Packages:     NewPackageRepository(db),
		News:         NewNewsRepository(db),
		Inquiries:    NewInquiryRepository(db),
	}
}
