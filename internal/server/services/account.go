package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ymstdo/userbase/internal/common"
	"github.com/ymstdo/userbase/internal/cryptox"
	"github.com/ymstdo/userbase/internal/logging"
	"github.com/ymstdo/userbase/internal/metrics"
	"github.com/ymstdo/userbase/internal/server/models"
	"github.com/ymstdo/userbase/internal/server/repositories/repomanager"
)

// AccountService handles account lifecycle:
// - Register: validate, assign identity, digest the password, insert
// - Login: verify credentials and open a login session
// - UpdatePassword: re-validate and re-digest
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	identity    *IdentityService
	logger      logging.Logger
}

// NewAccountService constructs an AccountService using the configured
// digest scheme.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.Hasher, logger logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		identity:    NewIdentityService(db, m),
		logger:      logger.With("module", "account_service"),
	}
}

// Register creates a new account from a (name, email, password) triple.
// The email is lowercased before persistence; the raw password only lives
// on the stack for the duration of the call. Taken names/emails are
// reported as field-level validation errors; the unique constraints at
// insert time close the race a pre-check cannot.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := models.ValidateName(name); err != nil {
		return nil, err
	}
	if err := models.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := models.ValidatePassword(password); err != nil {
		return nil, err
	}

	email = models.NormalizeEmail(email)
	repo := s.repomanager.Users(s.db)

	if err := s.checkAvailable(ctx, name, email); err != nil {
		return nil, err
	}

	id, err := s.identity.NewIdentity(ctx)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{ID: id, Name: name, Email: email, PasswordDigest: digest}
	u, err := repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			// lost the race between check and insert
			return nil, common.NewValidationError("account", "is already taken")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	metrics.AccountsCreated.Inc()
	s.logger.Info(ctx, "account created", "user_id", u.ID, "name", u.Name)
	return u, nil
}

func (s *AccountService) checkAvailable(ctx context.Context, name, email string) error {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.FindByName(ctx, name); err == nil {
		return common.NewValidationError("name", "is already taken")
	} else if !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return common.NewValidationError("email", "is already taken")
	} else if !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}

	return nil
}

// Login verifies the password for the account registered under email and,
// on success, opens a login session and returns its token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return "", common.ErrorUnauthorized
	}

	token, err := cryptox.NewSessionToken()
	if err != nil {
		return "", common.ErrorInternal
	}
	if err := s.repomanager.Sessions(s.db).Create(ctx, user.ID, token); err != nil {
		return "", common.ErrorInternal
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, nil
}

// Authenticated reports whether raw is the user's current password.
func (s *AccountService) Authenticated(user *models.User, raw string) bool {
	return s.hasher.Verify(raw, user.PasswordDigest)
}

// UpdatePassword re-validates and re-digests the user's password. The
// user's in-memory digest is refreshed on success.
func (s *AccountService) UpdatePassword(ctx context.Context, user *models.User, newPassword string) error {
	if err := models.ValidatePassword(newPassword); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateFields(ctx, user.ID, map[string]any{"password_digest": digest}); err != nil {
		return err
	}

	user.PasswordDigest = digest
	return nil
}
