package services

import (
	"testing"

	"terek_backend/internal/appErrors"
	"terek_backend/internal/auth"
	"terek_backend/internal/models"
	"terek_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreateGuest_CreatesOnce(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	first, err := svc.ResolveOrCreateGuest("donor@example.com", "Donor")
	require.NoError(t, err)
	assert.True(t, first.IsGuest())
	assert.NotEmpty(t, first.ID)

	second, err := svc.ResolveOrCreateGuest("donor@example.com", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestResolveOrCreateGuest_ReturnsActiveAccount(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, repos.Users.Create(&models.User{
		FullName:      "Registered",
		Email:         "reg@example.com",
		PasswordHash:  hash,
		Role:          models.UserRoleUser,
		AccountStatus: models.AccountStatusActive,
	}))

	resolved, err := svc.ResolveOrCreateGuest("reg@example.com", "Donor")
	require.NoError(t, err)
	assert.False(t, resolved.IsGuest())
}

func TestRegister_UpgradesGuestInPlace(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	guest, err := svc.ResolveOrCreateGuest("donor@example.com", "Donor")
	require.NoError(t, err)

	resp, err := svc.Register(&dto.RegisterRequest{
		FullName: "Donor Fullname",
		Email:    "donor@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	// The account keeps its id, so donations attached to the guest stay put.
	assert.Equal(t, guest.ID, resp.User.ID)
	assert.Equal(t, string(models.AccountStatusActive), resp.User.AccountStatus)
	assert.True(t, resp.IsUpgrade)
	assert.NotEmpty(t, resp.Token)

	// Guest placeholder must be replaced by real credentials.
	login, err := svc.Login(&dto.LoginRequest{Email: "donor@example.com", Password: "strongpassword"})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, login.User.ID)
}

func TestRegister_UpgradeByGuestIDChangesEmail(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	guest, err := svc.ResolveOrCreateGuest("checkout@example.com", "Donor")
	require.NoError(t, err)

	resp, err := svc.Register(&dto.RegisterRequest{
		FullName: "Donor Fullname",
		Email:    "personal@example.com",
		Password: "strongpassword",
		GuestID:  guest.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, guest.ID, resp.User.ID)
	assert.True(t, resp.IsUpgrade)
	assert.Equal(t, "personal@example.com", resp.User.Email)

	login, err := svc.Login(&dto.LoginRequest{Email: "personal@example.com", Password: "strongpassword"})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, login.User.ID)
}

func TestRegister_EmailConflictOnGuestUpgrade(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	_, err := svc.Register(&dto.RegisterRequest{
		FullName: "Holder",
		Email:    "held@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	guest, err := svc.ResolveOrCreateGuest("checkout@example.com", "Donor")
	require.NoError(t, err)

	// The guest cannot take over another account's email on upgrade.
	_, err = svc.Register(&dto.RegisterRequest{
		FullName: "Donor",
		Email:    "held@example.com",
		Password: "strongpassword",
		GuestID:  guest.ID,
	})
	assert.ErrorIs(t, err, appErrors.ErrEmailConflict)

	unchanged, err := repos.Users.FindByID(guest.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.IsGuest())
	assert.Equal(t, "checkout@example.com", unchanged.Email)
}

func TestRegister_StaleGuestIDFallsBackToEmail(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	resp, err := svc.Register(&dto.RegisterRequest{
		FullName: "Donor",
		Email:    "fresh@example.com",
		Password: "strongpassword",
		GuestID:  "00000000-0000-0000-0000-000000000000",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsUpgrade)
	assert.Equal(t, "fresh@example.com", resp.User.Email)
}

func TestRegister_DuplicateActiveAccount(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	_, err := svc.Register(&dto.RegisterRequest{
		FullName: "First",
		Email:    "taken@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		FullName: "Second",
		Email:    "taken@example.com",
		Password: "anotherpassword",
	})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateAccount)
}

func TestRegister_WeakPassword(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	_, err := svc.Register(&dto.RegisterRequest{
		FullName: "Short",
		Email:    "short@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestRegister_RelinksUnattachedDonations(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	donation := seedDonation(t, repos, nil, "donor@example.com", models.DonationStatusCompleted)

	resp, err := svc.Register(&dto.RegisterRequest{
		FullName: "Donor",
		Email:    "donor@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.RelinkedDonations)

	reloaded, err := repos.Donations.FindByID(donation.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.UserID)
	assert.Equal(t, resp.User.ID, *reloaded.UserID)
}

func TestLogin_RelinkSweepIsIdempotent(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	_, err := svc.Register(&dto.RegisterRequest{
		FullName: "Donor",
		Email:    "donor@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	// Donation made while logged out, against the same email.
	seedDonation(t, repos, nil, "donor@example.com", models.DonationStatusPending)

	first, err := svc.Login(&dto.LoginRequest{Email: "donor@example.com", Password: "strongpassword"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.RelinkedDonations)

	second, err := svc.Login(&dto.LoginRequest{Email: "donor@example.com", Password: "strongpassword"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.RelinkedDonations)
}

func TestLogin_RejectsGuestAndBadPassword(t *testing.T) {
	repos := setupRepos(t)
	svc := NewIdentityService(repos.Users, repos.Donations)

	_, err := svc.ResolveOrCreateGuest("guest@example.com", "Guest")
	require.NoError(t, err)

	// A guest never has a usable password.
	_, err = svc.Login(&dto.LoginRequest{Email: "guest@example.com", Password: "anything"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "missing@example.com", Password: "anything"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}
