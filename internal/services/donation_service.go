package services

import (
	"encoding/json"

	"terek_backend/internal/appErrors"
	"terek_backend/internal/logger"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
)

// DonationService owns donation records. Tree count and amount are recorded
// as the caller sent them, defaulting from the package when omitted; the
// gateway charges whatever the record says.
type DonationService interface {
	// Create builds a pending donation for an authenticated user.
	Create(userID string, req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
	// CreateGuest resolves the email to an account first. The donation is
	// attached to the account unless the email belongs to an active account
	// the caller has not authenticated as; then it stays unattached and the
	// relink sweep picks it up at the next login.
	CreateGuest(req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
	Get(id string) (*dto.DonationResponse, error)
	// GetForActor returns the donation only when the actor owns it or is an
	// admin.
	GetForActor(id, actorID string, admin bool) (*dto.DonationResponse, error)
	ListForUser(userID string) ([]dto.DonationResponse, error)

	// Admin operations
	ListAll(limit, offset int) ([]dto.DonationResponse, error)
	AdminUpdateStatus(id string, status models.DonationStatus) (*dto.DonationResponse, error)
	Summary() (*repositories.DonationSummary, error)
}

type DonationServiceImpl struct {
	donationRepo repositories.DonationRepository
	locationRepo repositories.LocationRepository
	packageRepo  repositories.PackageRepository
	identity     IdentityService
}

func NewDonationService(
	donationRepo repositories.DonationRepository,
	locationRepo repositories.LocationRepository,
	packageRepo repositories.PackageRepository,
	identity IdentityService,
) DonationService {
	return &DonationServiceImpl{
		donationRepo: donationRepo,
		locationRepo: locationRepo,
		packageRepo:  packageRepo,
		identity:     identity,
	}
}

func (s *DonationServiceImpl) Create(userID string, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	return s.create(&userID, req)
}

func (s *DonationServiceImpl) CreateGuest(req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	account, err := s.identity.ResolveOrCreateGuest(req.Email, req.DonorInfo["name"])
	if err != nil {
		return nil, err
	}

	if account.IsGuest() {
		return s.create(&account.ID, req)
	}
	// Active account, unauthenticated caller: keep the donation unattached.
	return s.create(nil, req)
}

func (s *DonationServiceImpl) create(userID *string, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	location, err := s.locationRepo.FindByID(req.LocationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrLocationNotFound) {
			return nil, appErrors.ErrLocationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	pkg, err := s.packageRepo.FindByID(req.PackageID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrPackageNotFound) {
			return nil, appErrors.ErrPackageNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	var donorInfo []byte
	if len(req.DonorInfo) > 0 {
		donorInfo, err = json.Marshal(req.DonorInfo)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
	}

	treeCount := req.TreeCount
	if treeCount == 0 {
		treeCount = pkg.TreeCount
	}
	amount := req.Amount
	if amount == 0 {
		amount = pkg.Price
	}

	donation := &models.Donation{
		LocationID: location.ID,
		PackageID:  pkg.ID,
		UserID:     userID,
		Email:      req.Email,
		TreeCount:  treeCount,
		Amount:     amount,
		Status:     models.DonationStatusPending,
		DonorInfo:  donorInfo,
	}

	if err := s.donationRepo.Create(donation); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("donation created",
		"donation_id", donation.ID,
		"location_id", donation.LocationID,
		"trees", donation.TreeCount,
		"amount", donation.Amount,
	)

	donation.Location = location
	donation.Package = pkg
	return donationResponse(donation), nil
}

func (s *DonationServiceImpl) Get(id string) (*dto.DonationResponse, error) {
	donation, err := s.donationRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrDonationNotFound) {
			return nil, appErrors.ErrDonationNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return donationResponse(donation), nil
}

func (s *DonationServiceImpl) GetForActor(id, actorID string, admin bool) (*dto.DonationResponse, error) {
	donation, err := s.donationRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrDonationNotFound) {
			return nil, appErrors.ErrDonationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if !admin && (donation.UserID == nil || *donation.UserID != actorID) {
		return nil, appErrors.ErrPermissionDenied
	}
	return donationResponse(donation), nil
}

func (s *DonationServiceImpl) ListForUser(userID string) ([]dto.DonationResponse, error) {
	donations, err := s.donationRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return donationResponses(donations), nil
}

func (s *DonationServiceImpl) ListAll(limit, offset int) ([]dto.DonationResponse, error) {
	donations, err := s.donationRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return donationResponses(donations), nil
}

// AdminUpdateStatus goes through the same guarded transition as the
// reconciliation engine, so an admin cannot reopen a terminal donation.
func (s *DonationServiceImpl) AdminUpdateStatus(id string, status models.DonationStatus) (*dto.DonationResponse, error) {
	if _, err := s.donationRepo.FindByID(id); err != nil {
		if appErrors.Is(err, repositories.ErrDonationNotFound) {
			return nil, appErrors.ErrDonationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	changed, err := s.donationRepo.Transition(id, status)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if !changed {
		return nil, appErrors.NewBadRequestError("Donation is already in a terminal status")
	}

	return s.Get(id)
}

func (s *DonationServiceImpl) Summary() (*repositories.DonationSummary, error) {
	summary, err := s.donationRepo.Summary()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return summary, nil
}

func donationResponse(d *models.Donation) *dto.DonationResponse {
	resp := &dto.DonationResponse{
		ID:             d.ID,
		LocationID:     d.LocationID,
		PackageID:      d.PackageID,
		Email:          d.Email,
		TreeCount:      d.TreeCount,
		Amount:         d.Amount,
		Status:         string(d.Status),
		PaymentOrderID: d.PaymentOrderID,
		CreatedAt:      d.CreatedAt,
	}

	if d.Location != nil {
		resp.LocationName = d.Location.Name
	}
	if d.Certificate != nil {
		resp.CertificateURL = d.Certificate.PDFURL
	}
	if len(d.DonorInfo) > 0 {
		var info map[string]string
		if err := json.Unmarshal(d.DonorInfo, &info); err == nil {
			resp.DonorInfo = info
		}
	}

	return resp
}

func donationResponses(donations []models.Donation) []dto.DonationResponse {
	out := make([]dto.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, *donationResponse(&donations[i]))
	}
	return out
}
