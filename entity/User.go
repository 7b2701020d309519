package entity

// User is an administrator credential record. Only the seeded account
// exists; there is no signup route.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     string `gorm:"not null;default:admin" json:"role"`
}
