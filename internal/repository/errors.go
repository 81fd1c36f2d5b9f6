package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite reports constraint failures as plain text when translation is off
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// translate maps a gorm error onto the application error codes.
func translate(err error, notFound, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return appErr.New(appErr.CodeNotFound, notFound)
	case IsUniqueViolation(err):
		return appErr.Wrap(err, appErr.CodeConflict, op+": already exists")
	default:
		return appErr.Wrap(err, appErr.CodeInternal, op+" failed")
	}
}
