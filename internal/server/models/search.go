package models

// SearchResult is one ranked row of a keyword search. It mirrors the
// public-safe fields of User; email and digest are deliberately excluded.
type SearchResult struct {
	Name        string
	IconKey     string
	Explanation string
	ID          string
}
