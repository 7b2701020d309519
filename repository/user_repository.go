package repository

import (
	"github.com/Richiez14/Upiksugbox/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// UpdatePassword overwrites the stored hash for one account.
func (r *UserRepository) UpdatePassword(username, hash string) error {
	return r.DB.Model(&entity.User{}).Where("username = ?", username).
		Update("password", hash).Error
}
