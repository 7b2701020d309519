package services

import (
	"strings"

	"github.com/Richiez14/Upiksugbox/entity"
	"github.com/Richiez14/Upiksugbox/repository"
)

// SuggestionPatch is a sparse update: nil means "leave unchanged".
// There is no way to clear a field back to null through a patch.
type SuggestionPatch struct {
	AdminResponse *string
	Status        *entity.SuggestionStatus
	IsPublic      *int
}

// SuggestionService applies submission defaults and patch semantics.
type SuggestionService struct {
	repo *repository.SuggestionRepository
}

func NewSuggestionService(repo *repository.SuggestionRepository) *SuggestionService {
	return &SuggestionService{repo: repo}
}

// Submit stores a new suggestion. Blank student names become "Anonymous".
func (s *SuggestionService) Submit(studentName string, dept entity.Department, text, imageURL, videoURL string) (*entity.Suggestion, error) {
	studentName = strings.TrimSpace(studentName)
	if studentName == "" {
		studentName = "Anonymous"
	}

	sug := &entity.Suggestion{
		StudentName: studentName,
		Department:  dept,
		Text:        text,
		ImageURL:    imageURL,
		VideoURL:    videoURL,
		Status:      entity.StatusPending,
	}
	if err := s.repo.Create(sug); err != nil {
		return nil, err
	}
	return sug, nil
}

func (s *SuggestionService) PublicBoard() ([]entity.Suggestion, error) {
	return s.repo.ListPublic()
}

func (s *SuggestionService) All() ([]entity.Suggestion, error) {
	return s.repo.ListAll()
}

// Update applies only the fields present in the patch. Updating an id
// that does not exist still succeeds.
func (s *SuggestionService) Update(id uint, patch SuggestionPatch) error {
	updates := map[string]any{}
	if patch.AdminResponse != nil {
		updates["admin_response"] = *patch.AdminResponse
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.IsPublic != nil {
		updates["is_public"] = *patch.IsPublic
	}
	return s.repo.UpdatePartial(id, updates)
}
