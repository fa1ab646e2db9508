package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// isUniqueViolation reports a unique constraint failure. Requires gorm.Config.TranslateError.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
