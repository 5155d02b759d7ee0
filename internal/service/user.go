package service

import (
	"context"

	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
	"github.com/skillsenselab/fintrack/internal/validation"
)

// UserService serves profile reads, updates, and account deletion.
type UserService struct {
	db  *database.DB
	log *logger.Logger
}

// NewUserService creates a UserService.
func NewUserService(db *database.DB, log *logger.Logger) *UserService {
	return &UserService{db: db, log: log.WithComponent("user")}
}

// UpdateUserRequest is the profile-update payload.
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,max=255"`
}

// UpdateUserResponse wraps the updated profile with a status line.
type UpdateUserResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"updatedUser"`
}

// Get returns the public profile for one user.
func (s *UserService) Get(ctx context.Context, id string) (*models.PublicUser, error) {
	userID, err := parseUUID("user id", id)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).Take(&user, "id = ?", userID).Error; err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, database.FromDatabase(err, "User not found")
	}

	profile := user.Public()
	return &profile, nil
}

// Update changes the profile's email and username. A different account
// already holding the email is a conflict.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*UpdateUserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	userID, err := parseUUID("user id", id)
	if err != nil {
		return nil, err
	}

	if err := ensureUserExists(ctx, s.db, userID); err != nil {
		return nil, err
	}

	var other models.User
	lookupErr := s.db.WithContext(ctx).Select("id").
		Take(&other, "email = ? AND id <> ?", req.Email, userID).Error
	if lookupErr == nil {
		return nil, apperrors.Conflict("Email already in use")
	}
	if !database.IsNotFoundError(lookupErr) {
		return nil, database.FromDatabase(lookupErr, "User not found")
	}

	values := map[string]interface{}{
		"email":    req.Email,
		"username": req.Username,
	}
	if err := updateByID(ctx, s.db.WithContext(ctx), &models.User{}, userID, values, "User not found"); err != nil {
		return nil, err
	}

	var updated models.User
	if err := s.db.WithContext(ctx).Take(&updated, "id = ?", userID).Error; err != nil {
		return nil, database.FromDatabase(err, "User not found")
	}

	return &UpdateUserResponse{Message: "User Updated!", User: updated.Public()}, nil
}

// Delete removes the account. Owned categories, transactions, and budgets go
// with it via the FK cascade.
func (s *UserService) Delete(ctx context.Context, id string) (*Message, error) {
	userID, err := parseUUID("user id", id)
	if err != nil {
		return nil, err
	}

	if err := deleteByID(ctx, s.db, &models.User{}, userID, "User not found"); err != nil {
		return nil, err
	}

	s.log.Info("User deleted", map[string]interface{}{"user_id": userID.String()})
	return &Message{Message: "User deleted!"}, nil
}
