package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/skillsenselab/fintrack/internal/errors"
)

// IsConnectionError checks if a database error looks like a connection
// failure that might be resolved by retrying.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	patterns := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"driver: bad connection",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}

// IsNotFoundError checks if the error is a GORM record-not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError checks if the error is a duplicate-key violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// FromDatabase converts a database error to an AppError. The notFoundMsg is
// used when the record is absent so each resource keeps its own message.
func FromDatabase(err error, notFoundMsg string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(notFoundMsg)
	}

	// The unique constraint is the final arbiter of uniqueness; a pre-check
	// only exists to produce a friendlier message.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.AlreadyExists("Email already exists").WithCause(err)
	}

	if IsConnectionError(err) {
		return apperrors.ServiceUnavailable("database").WithCause(err)
	}

	return apperrors.DatabaseError(err)
}
