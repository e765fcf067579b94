package services

import (
	"testing"

	"terek_backend/internal/appErrors"
	"terek_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, identity IdentityService, email string) *dto.UserProfile {
	t.Helper()
	resp, err := identity.Register(&dto.RegisterRequest{
		FullName: "User",
		Email:    email,
		Password: "strongpassword",
	})
	require.NoError(t, err)
	return resp.User
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	repos := setupRepos(t)
	identity := NewIdentityService(repos.Users, repos.Donations)
	svc := NewUserService(repos.Users)

	registerUser(t, identity, "first@example.com")
	second := registerUser(t, identity, "second@example.com")

	taken := "first@example.com"
	_, err := svc.UpdateProfile(second.ID, &dto.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, appErrors.ErrEmailConflict)

	free := "renamed@example.com"
	updated, err := svc.UpdateProfile(second.ID, &dto.UpdateProfileRequest{Email: &free})
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", updated.Email)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	repos := setupRepos(t)
	identity := NewIdentityService(repos.Users, repos.Donations)
	svc := NewUserService(repos.Users)

	user := registerUser(t, identity, "donor@example.com")

	name := "New Name"
	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	// Untouched fields keep their values.
	assert.Equal(t, "donor@example.com", updated.Email)
}

func TestAdminUpdate_EmailChangeGuarded(t *testing.T) {
	repos := setupRepos(t)
	identity := NewIdentityService(repos.Users, repos.Donations)
	svc := NewUserService(repos.Users)

	registerUser(t, identity, "first@example.com")
	second := registerUser(t, identity, "second@example.com")

	taken := "first@example.com"
	_, err := svc.AdminUpdate(second.ID, &dto.AdminUpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, appErrors.ErrEmailConflict)

	free := "moved@example.com"
	updated, err := svc.AdminUpdate(second.ID, &dto.AdminUpdateUserRequest{Email: &free})
	require.NoError(t, err)
	assert.Equal(t, "moved@example.com", updated.Email)
}

func TestDelete_RefusesSelf(t *testing.T) {
	repos := setupRepos(t)
	identity := NewIdentityService(repos.Users, repos.Donations)
	svc := NewUserService(repos.Users)

	admin := registerUser(t, identity, "admin@example.com")

	err := svc.Delete(admin.ID, admin.ID)
	assert.ErrorIs(t, err, appErrors.ErrCannotModifySelf)

	other := registerUser(t, identity, "other@example.com")
	require.NoError(t, svc.Delete(other.ID, admin.ID))

	_, err = svc.GetProfile(other.ID)
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}
