package services

import (
	"context"
	"database/sql"

	"github.com/ymstdo/userbase/internal/dbx"
	"github.com/ymstdo/userbase/internal/logging"
	"github.com/ymstdo/userbase/internal/metrics"
	"github.com/ymstdo/userbase/internal/server/blob"
	"github.com/ymstdo/userbase/internal/server/models"
	"github.com/ymstdo/userbase/internal/server/repositories/repomanager"
)

// IconUpload carries a submitted profile icon through the update.
type IconUpload struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ProfileService applies profile updates: the free-text explanation and
// the icon attachment, atomically.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	logger      logging.Logger
}

// NewProfileService constructs a ProfileService with the configured blob
// store strategy.
func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Store, logger logging.Logger) *ProfileService {
	return &ProfileService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		logger:      logger.With("module", "profile_service"),
	}
}

// UpdateProfile updates the user's explanation and/or icon in one
// transaction. Both parameters are optional; nil means "leave unchanged".
// Either every change is committed or none is: a failed icon attachment
// rolls back an already-applied explanation update. The row update and the
// blob write are jointly committed at the application level only; a blob
// uploaded to a remote backend just before a rollback is orphaned there,
// which is a known limitation.
//
// Callers only see success or failure. The cause is logged at warn level
// and never propagated.
func (s *ProfileService) UpdateProfile(ctx context.Context, user *models.User, explanation *string, icon *IconUpload) bool {
	var newIconKey string

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if explanation != nil {
			if err := models.ValidateExplanation(*explanation); err != nil {
				return err
			}
			if err := repo.UpdateFields(ctx, user.ID, map[string]any{"explanation": *explanation}); err != nil {
				return err
			}
		}

		if icon != nil {
			if err := models.ValidateIcon(icon.ContentType, len(icon.Content)); err != nil {
				return err
			}

			key, err := s.blobs.Store(ctx, icon.Content, icon.ContentType, icon.Filename)
			if err != nil {
				return err
			}

			if err := repo.UpdateFields(ctx, user.ID, map[string]any{"icon_key": key}); err != nil {
				return err
			}
			newIconKey = key
		}

		return nil
	})

	if err != nil {
		s.logger.Warn(ctx, "profile update rolled back", "user_id", user.ID, "error", err.Error())
		metrics.ProfileUpdatesTotal.WithLabelValues("rolled_back").Inc()
		return false
	}

	if explanation != nil {
		user.Explanation = *explanation
	}
	if newIconKey != "" {
		user.IconKey = newIconKey
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("ok").Inc()
	return true
}
