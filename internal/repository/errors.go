package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAlreadyMember    = errors.New("recipe already in set")
	ErrNotMember        = errors.New("recipe not in set")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrRecipeNameTaken  = errors.New("recipe name already in use")
)

// isDuplicateKey reports whether err is a unique-constraint violation
// on either backend: SQLSTATE 23505 on PostgreSQL, the driver message
// on SQLite. Repositories use it to turn storage conflicts into domain
// errors instead of leaking them.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isDuplicateKeyOn narrows isDuplicateKey to one index. PostgreSQL
// names the constraint in the error; SQLite only names the violated
// column, so callers pass both forms.
func isDuplicateKeyOn(err error, constraint, sqliteColumn string) bool {
	if !isDuplicateKey(err) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName == constraint
	}

	return strings.Contains(err.Error(), sqliteColumn)
}
