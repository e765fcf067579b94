package services

import (
	"terek_backend/internal/appErrors"
	"terek_backend/internal/auth"
	"terek_backend/internal/logger"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
)

// IdentityService owns account resolution: guest creation from donations,
// registration (including the guest upgrade path) and login. Both register
// and login sweep unattached donations for the email onto the account.
type IdentityService interface {
	// ResolveOrCreateGuest returns the account holding the email, creating a
	// guest account when none exists. Guest accounts carry an unusable
	// password hash and keep their id through a later upgrade.
	ResolveOrCreateGuest(email, fullName string) (*models.User, error)
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type IdentityServiceImpl struct {
	userRepo     repositories.UserRepository
	donationRepo repositories.DonationRepository
}

func NewIdentityService(
	userRepo repositories.UserRepository,
	donationRepo repositories.DonationRepository,
) IdentityService {
	return &IdentityServiceImpl{
		userRepo:     userRepo,
		donationRepo: donationRepo,
	}
}

func (s *IdentityServiceImpl) ResolveOrCreateGuest(email, fullName string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return user, nil
	}
	if !appErrors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.InternalError(err)
	}

	placeholder, err := auth.GuestPlaceholderHash()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	guest := &models.User{
		FullName:      fullName,
		Email:         email,
		PasswordHash:  placeholder,
		Role:          models.UserRoleUser,
		AccountStatus: models.AccountStatusGuest,
	}

	if err := s.userRepo.Create(guest); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			// Lost a race with a concurrent checkout for the same email;
			// the winner's account is the right one.
			return s.userRepo.FindByEmail(email)
		}
		return nil, appErrors.InternalError(err)
	}

	logger.Info("guest account created", "user_id", guest.ID)
	return guest, nil
}

// Register creates an account, or upgrades a guest account in place so that
// its donations stay attached to the same id. The guest is matched by
// guest_id when the caller carries one, by email otherwise.
func (s *IdentityServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	existing, err := s.resolveForRegister(req)
	switch {
	case err == nil && existing.IsGuest():
		// Upgrade path: same id, real credentials.
		if req.Email != existing.Email {
			taken, err := s.userRepo.EmailTakenByOther(req.Email, existing.ID)
			if err != nil {
				return nil, appErrors.InternalError(err)
			}
			if taken {
				return nil, appErrors.ErrEmailConflict
			}
			existing.Email = req.Email
		}
		existing.FullName = req.FullName
		existing.PasswordHash = hash
		existing.AccountStatus = models.AccountStatusActive
		if req.Phone != "" {
			existing.Phone = req.Phone
		}
		if err := s.userRepo.Update(existing); err != nil {
			return nil, appErrors.InternalError(err)
		}
		logger.Info("guest account upgraded", "user_id", existing.ID)
		return s.issueSession(existing, true)

	case err == nil:
		return nil, appErrors.ErrDuplicateAccount

	case !appErrors.Is(err, repositories.ErrUserNotFound):
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		FullName:      req.FullName,
		Email:         req.Email,
		PasswordHash:  hash,
		Phone:         req.Phone,
		Role:          models.UserRoleUser,
		AccountStatus: models.AccountStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrDuplicateAccount
		}
		return nil, appErrors.InternalError(err)
	}

	return s.issueSession(user, false)
}

// resolveForRegister looks the account up by guest_id first, falling back to
// the email. A stale guest_id is not an error; the email path decides.
func (s *IdentityServiceImpl) resolveForRegister(req *dto.RegisterRequest) (*models.User, error) {
	if req.GuestID != "" {
		user, err := s.userRepo.FindByID(req.GuestID)
		if err == nil {
			return user, nil
		}
		if !appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, err
		}
	}
	return s.userRepo.FindByEmail(req.Email)
}

func (s *IdentityServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	// Guest hashes are random, so this also rejects guests that never
	// registered.
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logger.WithError(err).Warn("failed to update last login", "user_id", user.ID)
	}

	return s.issueSession(user, false)
}

// issueSession relinks stray donations, signs a token and builds the
// response. Relinking runs on every session start so donations made while
// logged out still find their way home.
func (s *IdentityServiceImpl) issueSession(user *models.User, isUpgrade bool) (*dto.AuthResponse, error) {
	relinked, err := s.donationRepo.RelinkByEmail(user.Email, user.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if relinked > 0 {
		logger.Info("donations relinked", "user_id", user.ID, "count", relinked)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:             token,
		User:              userProfile(user),
		IsUpgrade:         isUpgrade,
		RelinkedDonations: relinked,
	}, nil
}

func userProfile(u *models.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		Phone:         u.Phone,
		CompanyName:   u.CompanyName,
		Role:          string(u.Role),
		AccountStatus: string(u.AccountStatus),
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
	}
}
