package postgres

import (
	"autoserv/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	uniqueViolationCode   = "23505"
	notNullViolationCode  = "23502"
	checkViolationCode    = "23514"
	accountEmailIndexName = "accounts_email_key"
)

// isUniqueConstraintViolation reports a duplicate key on any unique index.
// GORM only translates the error when TranslateError is enabled, so the raw pgconn code is checked as well.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == notNullViolationCode
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// constraintName returns the violated constraint, or "" when the driver did not report one.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
