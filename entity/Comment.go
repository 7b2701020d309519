package entity

import "time"

type Comment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SuggestionID uint       `gorm:"not null;index" json:"suggestion_id"`
	CommentText  string     `gorm:"not null" json:"comment_text"`
	AuthorRole   AuthorRole `gorm:"not null" json:"author_role"`
	CreatedAt    time.Time  `json:"created_at"`

	Suggestion Suggestion `json:"-"`
}
