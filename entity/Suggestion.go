package entity

import "time"

type Suggestion struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	StudentName   string           `gorm:"not null;default:Anonymous" json:"student_name"`
	Department    Department       `gorm:"not null" json:"department"`
	Text          string           `gorm:"not null" json:"text"`
	ImageURL      string           `json:"image_url"` // opaque data URL or link, can be huge
	VideoURL      string           `json:"video_url"`
	Status        SuggestionStatus `gorm:"not null;default:pending" json:"status"`
	AdminResponse *string          `json:"admin_response"` // null until an admin writes one
	IsPublic      int              `gorm:"not null;default:0" json:"is_public"`
	CreatedAt     time.Time        `json:"created_at"`

	Comments []Comment `gorm:"foreignKey:SuggestionID" json:"-"`
}
