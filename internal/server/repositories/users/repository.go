package users

import (
	"context"

	"github.com/ymstdo/userbase/internal/server/models"
)

// Repository is the persistence boundary for user rows. Uniqueness of
// name and email is enforced by the storage layer, not by callers; Insert
// surfaces a violated constraint as common.ErrorDuplicate so that the
// race between a pre-check and the insert stays closed.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, keywords []string, limit, offset int) ([]*models.SearchResult, error)
}
