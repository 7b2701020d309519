package services

import (
	"testing"
	"time"

	"github.com/Richiez14/Upiksugbox/entity"
	"github.com/Richiez14/Upiksugbox/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{Username: "admin", Password: string(hash), Role: "admin"}).Error)

	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestLogin(t *testing.T) {
	svc := setupAuthService(t)

	token, user, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := setupAuthService(t)

	_, _, err := svc.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := setupAuthService(t)

	_, _, err := svc.Login("ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user and wrong password look the same")
}

func TestChangePassword(t *testing.T) {
	svc := setupAuthService(t)

	require.NoError(t, svc.ChangePassword("admin", "admin123", "s3cret!"))

	_, _, err := svc.Login("admin", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "old password stops working")

	_, _, err = svc.Login("admin", "s3cret!")
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrentLeavesStoredOne(t *testing.T) {
	svc := setupAuthService(t)

	err := svc.ChangePassword("admin", "wrong", "s3cret!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("admin", "admin123")
	assert.NoError(t, err, "failed change must not alter the password")
}
