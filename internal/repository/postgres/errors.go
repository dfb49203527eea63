package postgres

import "github.com/jackc/pgx/v5"

// ErrNotFound aliases pgx.ErrNoRows so callers can use a single
// errors.Is check for both scan misses and zero-row updates.
var ErrNotFound = pgx.ErrNoRows
