package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrSchemaMissing is returned when a backing table is absent. This is
	// a deployment configuration fault, not a transport failure, and is
	// surfaced to users as such.
	ErrSchemaMissing = errors.New("persistence: expected table does not exist")
)

// undefined_table, see Postgres error code appendix.
const pgUndefinedTable = "42P01"

// ClassifyError maps driver errors onto the persistence sentinels so that
// callers never depend on pgx directly.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return ErrSchemaMissing
	}
	return err
}
