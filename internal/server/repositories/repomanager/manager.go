package repomanager

import (
	"context"
	"database/sql"

	"github.com/ymstdo/userbase/internal/dbx"
	"github.com/ymstdo/userbase/internal/server/repositories/sessions"
	"github.com/ymstdo/userbase/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so that a service
// can run the same repository against the pool or an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
