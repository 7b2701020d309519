package repository

import (
	"github.com/Richiez14/Upiksugbox/entity"

	"gorm.io/gorm"
)

// CommentRepository talks to the comments table only.
type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	return r.DB.Create(c).Error
}

// ListBySuggestion returns the thread oldest first.
func (r *CommentRepository) ListBySuggestion(suggestionID uint) ([]entity.Comment, error) {
	items := make([]entity.Comment, 0)
	if err := r.DB.Where("suggestion_id = ?", suggestionID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
