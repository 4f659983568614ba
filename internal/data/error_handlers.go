package data

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func handleError(err error) error {
	switch {
	case isUniqueViolation(err):
		return errdefs.ErrAlreadyExists
	case isNotFound(err), isForeignKeyViolation(err):
		return errdefs.ErrNotFound
	case isCheckViolation(err):
		return errdefs.ErrValidation
	}
	return fmt.Errorf("repository error: %w", err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
