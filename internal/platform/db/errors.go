package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict is returned when the store rejects a write on a uniqueness
// constraint. The resolvers' read-then-create is best-effort, not a guarded
// upsert, so concurrent submissions resolving the same new identity may
// both attempt creation; the loser sees this error and the submission fails
// without a local retry.
var ErrConflict = errors.New("store uniqueness conflict")

const uniqueViolation = "23505"

// WrapConflict translates a unique-violation error into ErrConflict and
// passes every other error through unchanged.
func WrapConflict(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(ErrConflict, err)
	}
	return err
}
