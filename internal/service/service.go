// Package service implements the application operations behind the HTTP
// handlers. Every operation follows the same shape: validate the request,
// check referenced rows exist, perform the storage operation, and return
// either the persisted row trimmed to its public fields or a status message.
// Expected failures are *errors.AppError values; the HTTP layer maps them.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/models"
)

// Message is the response body for operations that return only a status line.
type Message struct {
	Message string `json:"message"`
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperrors.Validation(fmt.Sprintf("%s must be a valid UUID", field))
	}
	return id, nil
}

// ensureUserExists verifies the referenced account row is present. The check
// exists to produce a friendly 404; constraints remain the final arbiter.
func ensureUserExists(ctx context.Context, db *database.DB, id uuid.UUID) error {
	var user models.User
	err := db.WithContext(ctx).Select("id").Take(&user, "id = ?", id).Error
	if err != nil {
		if database.IsNotFoundError(err) {
			return apperrors.NotFound("User not found")
		}
		return database.FromDatabase(err, "User not found")
	}
	return nil
}

// deleteByID issues a single conditional delete; the affected-row count
// decides between success and not-found, so there is no check-then-act window.
func deleteByID(ctx context.Context, db *database.DB, model interface{}, id uuid.UUID, notFoundMsg string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return database.FromDatabase(res.Error, notFoundMsg)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(notFoundMsg)
	}
	return nil
}

// updateByID issues a single conditional update with the same affected-row
// semantics as deleteByID.
func updateByID(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID, values map[string]interface{}, notFoundMsg string) error {
	res := db.Model(model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return database.FromDatabase(res.Error, notFoundMsg)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(notFoundMsg)
	}
	return nil
}
