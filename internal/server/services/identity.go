// Package services contains the server-side business logic of the userbase
// subsystem: identity generation, account management, keyword search, and
// transactional profile updates.
package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/ymstdo/userbase/internal/common"
	"github.com/ymstdo/userbase/internal/server/repositories/repomanager"
)

// maxIdentityAttempts bounds the collision-retry loop. Running out of
// attempts means the existence check is broken, not that the space is
// actually full.
const maxIdentityAttempts = 100

// IdentityService assigns collision-free opaque identifiers to new
// accounts. The check here is advisory; the unique constraint on
// users.id at insert time is the authoritative guard.
type IdentityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewIdentityService constructs an IdentityService.
func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager) *IdentityService {
	return &IdentityService{db: db, repomanager: m}
}

// NewIdentity returns a fresh random 128-bit identifier in textual form,
// retrying on collision with an existing row. It never silently accepts a
// duplicate: exhausting the retry budget yields ErrIdentitySpaceExhausted.
func (s *IdentityService) NewIdentity(ctx context.Context) (string, error) {
	repo := s.repomanager.Users(s.db)

	for i := 0; i < maxIdentityAttempts; i++ {
		candidate := uuid.NewString()

		exists, err := repo.ExistsByID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", common.ErrIdentitySpaceExhausted
}
