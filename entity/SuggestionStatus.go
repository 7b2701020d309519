package entity

// SuggestionStatus tracks how far an admin has taken a submission.
type SuggestionStatus string

const (
	StatusPending   SuggestionStatus = "pending"
	StatusReviewed  SuggestionStatus = "reviewed"
	StatusResponded SuggestionStatus = "responded"
)
