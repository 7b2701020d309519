package repository

import (
	"github.com/Richiez14/Upiksugbox/entity"

	"gorm.io/gorm"
)

// SuggestionRepository talks to the suggestions table only.
type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

func (r *SuggestionRepository) Create(s *entity.Suggestion) error {
	return r.DB.Create(s).Error
}

func (r *SuggestionRepository) FindByID(id uint) (*entity.Suggestion, error) {
	var s entity.Suggestion
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListPublic returns board-visible suggestions, newest first.
// Always a non-nil slice so empty boards serialize as [].
func (r *SuggestionRepository) ListPublic() ([]entity.Suggestion, error) {
	items := make([]entity.Suggestion, 0)
	if err := r.DB.Where("is_public = ?", 1).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every suggestion regardless of visibility, newest first.
func (r *SuggestionRepository) ListAll() ([]entity.Suggestion, error) {
	items := make([]entity.Suggestion, 0)
	if err := r.DB.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdatePartial applies only the supplied columns. A WHERE that matches
// nothing is not an error; the row count is deliberately not checked.
func (r *SuggestionRepository) UpdatePartial(id uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&entity.Suggestion{}).Where("id = ?", id).
		Updates(updates).Error
}
