package entity

// AuthorRole marks who wrote a comment on the public board.
type AuthorRole string

const (
	RoleStudent AuthorRole = "student"
	RoleAdmin   AuthorRole = "admin"
)
