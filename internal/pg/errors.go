package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories react to. The GM class is raised by the
// stored procedures in migrations.
const (
	CodeForeignKeyViolation = "23503"
	CodeUniqueViolation     = "23505"
	CodeCheckViolation      = "23514"
	CodeInsufficientBalance = "GM001"
)

// AsPgError extracts a Postgres error from err's chain.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func HasCode(err error, code string) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == code
}
