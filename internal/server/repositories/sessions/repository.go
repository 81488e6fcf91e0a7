package sessions

import (
	"context"

	"github.com/ymstdo/userbase/internal/server/models"
)

// Repository persists login-session tokens. Issuing and checking tokens
// beyond storage is the embedding host's concern.
type Repository interface {
	Create(ctx context.Context, userID string, token string) error
	Find(ctx context.Context, token string) (*models.LoginSession, error)
	Delete(ctx context.Context, token string) error
}
