// Package users provides a PostgreSQL-backed repository for the users
// relation, including the ranked keyword search.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ymstdo/userbase/internal/common"
	"github.com/ymstdo/userbase/internal/dbx"
	"github.com/ymstdo/userbase/internal/server/models"
)

// pgUniqueViolation is the PostgreSQL error code for a violated unique
// constraint.
const pgUniqueViolation = "23505"

// updatableColumns is the whitelist for UpdateFields.
var updatableColumns = map[string]struct{}{
	"name":            {},
	"email":           {},
	"password_digest": {},
	"explanation":     {},
	"icon_key":        {},
}

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password_digest, explanation, icon_key, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var explanation, iconKey sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordDigest,
		&explanation, &iconKey, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Explanation = explanation.String
	user.IconKey = iconKey.String
	return user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, name))
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// Insert persists a new user row. A violated unique constraint on name,
// email or id is reported as common.ErrorDuplicate.
func (r *PostgresRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_digest, explanation, icon_key)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordDigest,
		user.Explanation, user.IconKey).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: %s", common.ErrorDuplicate, pgErr.ConstraintName)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// UpdateFields updates the given columns on one row. Column names are
// checked against a whitelist; an unknown column is a programming error
// and is rejected.
func (r *PostgresRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	cols := make([]string, 0, len(fields))
	for col := range fields {
		if _, ok := updatableColumns[col]; !ok {
			return fmt.Errorf("column %q is not updatable", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", common.ErrorDuplicate, pgErr.ConstraintName)
		}
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Search runs the ranked keyword query built by buildSearchQuery. An empty
// keyword list yields an empty result without touching the store.
func (r *PostgresRepository) Search(ctx context.Context, keywords []string, limit, offset int) ([]*models.SearchResult, error) {
	if len(keywords) == 0 {
		return []*models.SearchResult{}, nil
	}

	query, args := buildSearchQuery(keywords, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	results := make([]*models.SearchResult, 0, limit)
	for rows.Next() {
		res := &models.SearchResult{}
		var explanation, iconKey sql.NullString
		if err := rows.Scan(&res.Name, &iconKey, &explanation, &res.ID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		res.Explanation = explanation.String
		res.IconKey = iconKey.String
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}
