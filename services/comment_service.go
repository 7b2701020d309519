package services

import (
	"github.com/Richiez14/Upiksugbox/entity"
	"github.com/Richiez14/Upiksugbox/repository"
)

// CommentService manages the thread under one suggestion.
type CommentService struct {
	repo *repository.CommentRepository
}

func NewCommentService(repo *repository.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) Add(suggestionID uint, text string, role entity.AuthorRole) (*entity.Comment, error) {
	c := &entity.Comment{
		SuggestionID: suggestionID,
		CommentText:  text,
		AuthorRole:   role,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Thread(suggestionID uint) ([]entity.Comment, error) {
	return s.repo.ListBySuggestion(suggestionID)
}
