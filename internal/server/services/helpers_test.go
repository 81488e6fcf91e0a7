package services

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ymstdo/userbase/internal/common"
	"github.com/ymstdo/userbase/internal/dbx"
	"github.com/ymstdo/userbase/internal/logging"
	"github.com/ymstdo/userbase/internal/server/models"
	sessionsrepo "github.com/ymstdo/userbase/internal/server/repositories/sessions"
	usersrepo "github.com/ymstdo/userbase/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// --- fakes ---

type searchCall struct {
	keywords []string
	limit    int
	offset   int
}

type fakeUsersRepo struct {
	byID    map[string]*models.User
	byName  map[string]*models.User
	byEmail map[string]*models.User

	existsLeft int // ExistsByID returns true this many times, then false
	existsErr  error

	inserted  []*models.User
	insertErr error

	updates   []map[string]any
	updateErr error

	searchOut  []*models.SearchResult
	searchErr  error
	lastSearch *searchCall
}

func (f *fakeUsersRepo) find(m map[string]*models.User, key string) (*models.User, error) {
	if u, ok := m[key]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return f.find(f.byID, id)
}

func (f *fakeUsersRepo) FindByName(ctx context.Context, name string) (*models.User, error) {
	return f.find(f.byName, name)
}

func (f *fakeUsersRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.find(f.byEmail, email)
}

func (f *fakeUsersRepo) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, user)
	return user, nil
}

func (f *fakeUsersRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, fields)
	return nil
}

func (f *fakeUsersRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.existsLeft != 0 {
		f.existsLeft--
		return true, nil
	}
	return false, nil
}

func (f *fakeUsersRepo) Search(ctx context.Context, keywords []string, limit, offset int) ([]*models.SearchResult, error) {
	f.lastSearch = &searchCall{keywords: keywords, limit: limit, offset: offset}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

type fakeSessionsRepo struct {
	created   map[string]string // token -> userID
	createErr error
}

func (f *fakeSessionsRepo) Create(ctx context.Context, userID string, token string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.created == nil {
		f.created = map[string]string{}
	}
	f.created[token] = userID
	return nil
}

func (f *fakeSessionsRepo) Find(ctx context.Context, token string) (*models.LoginSession, error) {
	if userID, ok := f.created[token]; ok {
		return &models.LoginSession{Token: token, UserID: userID}, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, token string) error {
	delete(f.created, token)
	return nil
}

// fakeRepoManager hands out the same fakes regardless of the DBTX.
type fakeRepoManager struct {
	users    *fakeUsersRepo
	sessions *fakeSessionsRepo
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return f.users }

func (f *fakeRepoManager) Sessions(db dbx.DBTX) sessionsrepo.Repository { return f.sessions }

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: &fakeUsersRepo{}, sessions: &fakeSessionsRepo{}}
}
