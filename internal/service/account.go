package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillsenselab/fintrack/internal/auth/password"
	"github.com/skillsenselab/fintrack/internal/auth/token"
	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
	"github.com/skillsenselab/fintrack/internal/validation"
)

// AccountService orchestrates registration and login: uniqueness checks,
// password hashing and verification, and token issuance.
type AccountService struct {
	db     *database.DB
	hasher password.Hasher
	tokens *token.Service
	log    *logger.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(db *database.DB, hasher password.Hasher, tokens *token.Service, log *logger.Logger) *AccountService {
	return &AccountService{
		db:     db,
		hasher: hasher,
		tokens: tokens,
		log:    log.WithComponent("account"),
	}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both Register and Login: the public profile and
// a fresh access/refresh token pair.
type AuthResponse struct {
	User models.PublicUser `json:"user"`
	token.Pair
}

// Register creates a new account and issues its first token pair.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var existing models.User
	err := s.db.WithContext(ctx).Select("id").Take(&existing, "email = ?", req.Email).Error
	if err == nil {
		return nil, apperrors.AlreadyExists("Email already exists")
	}
	if !database.IsNotFoundError(err) {
		return nil, database.FromDatabase(err, "User not found")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// index reports it as a duplicate key, which maps to the same 409.
		return nil, database.FromDatabase(err, "User not found")
	}

	pair, err := s.tokens.GenerateTokens(user.ID.String(), uuid.NewString())
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("User registered", map[string]interface{}{"user_id": user.ID.String()})
	return &AuthResponse{User: user.Public(), Pair: pair}, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password produce the identical error so neither check leaks.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var user models.User
	err := s.db.WithContext(ctx).Take(&user, "email = ?", req.Email).Error
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, database.FromDatabase(err, "User not found")
	}

	if err := s.hasher.Verify(req.Password, user.Password); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	pair, err := s.tokens.GenerateTokens(user.ID.String(), uuid.NewString())
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("User logged in", map[string]interface{}{"user_id": user.ID.String()})
	return &AuthResponse{User: user.Public(), Pair: pair}, nil
}
