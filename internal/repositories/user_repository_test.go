package repositories

import (
	"fmt"
	"testing"

	"terek_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupUserRepo(t *testing.T) UserRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewUserRepository(db)
}

func TestCreate_DuplicateEmailIsTyped(t *testing.T) {
	repo := setupUserRepo(t)

	first := &models.User{
		FullName:      "First",
		Email:         "donor@example.com",
		PasswordHash:  "hash",
		Role:          models.UserRoleUser,
		AccountStatus: models.AccountStatusActive,
	}
	require.NoError(t, repo.Create(first))

	// The unique index, not a pre-read, decides; callers match on the
	// sentinel to recover from create races.
	second := &models.User{
		FullName:      "Second",
		Email:         "donor@example.com",
		PasswordHash:  "hash",
		Role:          models.UserRoleUser,
		AccountStatus: models.AccountStatusGuest,
	}
	assert.ErrorIs(t, repo.Create(second), ErrUserAlreadyExists)
}
