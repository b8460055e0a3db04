package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// validUUID evita enviar a la base ids que Postgres rechazaría con 22P02.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// likePattern envuelve la búsqueda para ILIKE '%query%'.
func likePattern(query string) string {
	return "%" + query + "%"
}

// cents convierte una suma NUMERIC (ya en centavos) a int64.
func cents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
