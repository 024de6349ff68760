package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE unique_violation.
const pgUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra una restricción UNIQUE. Acá lo
// producen la carrera de numeración en quote_versions, la doble respuesta a
// un link público y el alta de un usuario con email repetido.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
