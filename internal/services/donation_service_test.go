package services

import (
	"testing"

	"terek_backend/internal/appErrors"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonationFixture(t *testing.T) (*repositories.Registry, DonationService, *models.Location, *models.Package) {
	t.Helper()

	repos := setupRepos(t)
	identity := NewIdentityService(repos.Users, repos.Donations)
	svc := NewDonationService(repos.Donations, repos.Locations, repos.Packages, identity)
	location, pkg := seedCatalog(t, repos)
	return repos, svc, location, pkg
}

func TestCreate_PricesFromPackage(t *testing.T) {
	repos, svc, location, pkg := newDonationFixture(t)

	identity := NewIdentityService(repos.Users, repos.Donations)
	session, err := identity.Register(&dto.RegisterRequest{
		FullName: "Donor",
		Email:    "donor@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	resp, err := svc.Create(session.User.ID, &dto.CreateDonationRequest{
		LocationID: location.ID,
		PackageID:  pkg.ID,
		Email:      "donor@example.com",
		DonorInfo:  map[string]string{"name": "Donor"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.DonationStatusPending), resp.Status)
	assert.Equal(t, pkg.Price, resp.Amount)
	assert.Equal(t, pkg.TreeCount, resp.TreeCount)
	assert.Equal(t, location.Name, resp.LocationName)
	assert.Equal(t, "Donor", resp.DonorInfo["name"])
}

func TestCreateGuest_AcceptsCallerPricing(t *testing.T) {
	repos, svc, location, pkg := newDonationFixture(t)

	// Caller-sent values win over the package defaults.
	resp, err := svc.CreateGuest(&dto.CreateDonationRequest{
		LocationID: location.ID,
		PackageID:  pkg.ID,
		Email:      "a@x.com",
		TreeCount:  10,
		Amount:     9990,
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.DonationStatusPending), resp.Status)
	assert.Equal(t, int64(9990), resp.Amount)
	assert.Equal(t, 10, resp.TreeCount)

	persisted, err := repos.Donations.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9990), persisted.Amount)
	assert.Equal(t, 10, persisted.TreeCount)
}

func TestCreate_UnknownCatalogReferences(t *testing.T) {
	_, svc, location, pkg := newDonationFixture(t)

	_, err := svc.Create("user-1", &dto.CreateDonationRequest{
		LocationID: "missing",
		PackageID:  pkg.ID,
		Email:      "donor@example.com",
	})
	assert.ErrorIs(t, err, appErrors.ErrLocationNotFound)

	_, err = svc.Create("user-1", &dto.CreateDonationRequest{
		LocationID: location.ID,
		PackageID:  "missing",
		Email:      "donor@example.com",
	})
	assert.ErrorIs(t, err, appErrors.ErrPackageNotFound)
}

func TestCreateGuest_AttachesToGuestAccount(t *testing.T) {
	repos, svc, location, pkg := newDonationFixture(t)

	resp, err := svc.CreateGuest(&dto.CreateDonationRequest{
		LocationID: location.ID,
		PackageID:  pkg.ID,
		Email:      "fresh@example.com",
		DonorInfo:  map[string]string{"name": "Fresh Donor"},
	})
	require.NoError(t, err)

	donation, err := repos.Donations.FindByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, donation.UserID)

	owner, err := repos.Users.FindByID(*donation.UserID)
	require.NoError(t, err)
	assert.True(t, owner.IsGuest())
	assert.Equal(t, "fresh@example.com", owner.Email)
}

func TestCreateGuest_LeavesActiveOwnersDonationUnattached(t *testing.T) {
	repos, svc, location, pkg := newDonationFixture(t)

	identity := NewIdentityService(repos.Users, repos.Donations)
	_, err := identity.Register(&dto.RegisterRequest{
		FullName: "Registered",
		Email:    "reg@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	resp, err := svc.CreateGuest(&dto.CreateDonationRequest{
		LocationID: location.ID,
		PackageID:  pkg.ID,
		Email:      "reg@example.com",
	})
	require.NoError(t, err)

	// Unauthenticated caller cannot claim a registered account's identity;
	// the login relink sweep attaches it later.
	donation, err := repos.Donations.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Nil(t, donation.UserID)

	session, err := identity.Login(&dto.LoginRequest{Email: "reg@example.com", Password: "strongpassword"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.RelinkedDonations)
}

func TestGetForActor_OwnershipAndAdmin(t *testing.T) {
	repos, svc, _, _ := newDonationFixture(t)

	guest := seedGuestOwner(t, repos, "owner@example.com")
	donation := seedDonation(t, repos, &guest.ID, "owner@example.com", models.DonationStatusPending)

	_, err := svc.GetForActor(donation.ID, guest.ID, false)
	assert.NoError(t, err)

	_, err = svc.GetForActor(donation.ID, "intruder", false)
	assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)

	_, err = svc.GetForActor(donation.ID, "intruder", true)
	assert.NoError(t, err)
}

func TestAdminUpdateStatus_GuardsTerminalStates(t *testing.T) {
	repos, svc, _, _ := newDonationFixture(t)

	donation := seedDonation(t, repos, nil, "donor@example.com", models.DonationStatusPending)

	updated, err := svc.AdminUpdateStatus(donation.ID, models.DonationStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, string(models.DonationStatusCancelled), updated.Status)

	_, err = svc.AdminUpdateStatus(donation.ID, models.DonationStatusCompleted)
	require.Error(t, err)

	reloaded, err := repos.Donations.FindByID(donation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCancelled, reloaded.Status)
}

func TestListForUser_NewestFirst(t *testing.T) {
	repos, svc, location, pkg := newDonationFixture(t)

	guest := seedGuestOwner(t, repos, "donor@example.com")
	for i := 0; i < 3; i++ {
		require.NoError(t, repos.Donations.Create(&models.Donation{
			LocationID: location.ID,
			PackageID:  pkg.ID,
			UserID:     &guest.ID,
			Email:      "donor@example.com",
			TreeCount:  pkg.TreeCount,
			Amount:     pkg.Price,
			Status:     models.DonationStatusPending,
		}))
	}

	donations, err := svc.ListForUser(guest.ID)
	require.NoError(t, err)
	require.Len(t, donations, 3)
	for i := 1; i < len(donations); i++ {
		assert.False(t, donations[i-1].CreatedAt.Before(donations[i].CreatedAt))
	}
}
