package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Richiez14/Upiksugbox/entity"
	"github.com/Richiez14/Upiksugbox/repository"
	"github.com/Richiez14/Upiksugbox/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password so
// responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin login and password changes.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks the credential pair and mints a JWT.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// ChangePassword verifies the current password before overwriting it.
func (s *AuthService) ChangePassword(username, current, next string) error {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.Username, string(hash))
}
