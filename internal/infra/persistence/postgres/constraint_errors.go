package postgres

import (
	"strings"

	"accounts/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a PostgreSQL unique_violation (23505).
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}
