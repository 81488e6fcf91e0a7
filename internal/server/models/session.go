package models

import "time"

// LoginSession ties a session token to a user. A user owns many sessions.
type LoginSession struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
