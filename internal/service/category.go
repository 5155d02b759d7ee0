package service

import (
	"context"

	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
	"github.com/skillsenselab/fintrack/internal/validation"
)

// CategoryService serves category CRUD.
type CategoryService struct {
	db  *database.DB
	log *logger.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(db *database.DB, log *logger.Logger) *CategoryService {
	return &CategoryService{db: db, log: log.WithComponent("category")}
}

// CategoryRequest is the create/update payload.
type CategoryRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Name   string `json:"name" validate:"required,max=55"`
	Type   string `json:"type" validate:"required,oneof=expense income"`
}

// CategoryResponse wraps a category row with a status line.
type CategoryResponse struct {
	Message  string           `json:"message"`
	Category *models.Category `json:"result"`
}

// Create inserts a new category for an existing user.
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, userID); err != nil {
		return nil, err
	}

	category := models.Category{
		UserID: userID,
		Name:   req.Name,
		Type:   models.EntryType(req.Type),
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, database.FromDatabase(err, "Category not found")
	}

	return &CategoryResponse{Message: "Category created!", Category: &category}, nil
}

// ListByUser returns all categories owned by the user.
func (s *CategoryService) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	id, err := parseUUID("user_id", userID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, id); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Find(&categories).Error; err != nil {
		return nil, database.FromDatabase(err, "Category not found")
	}
	if len(categories) == 0 {
		return nil, apperrors.NotFound("No categories found")
	}
	return categories, nil
}

// Update changes a category's name and type.
func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (*CategoryResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	categoryID, err := parseUUID("category id", id)
	if err != nil {
		return nil, err
	}
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, userID); err != nil {
		return nil, err
	}

	values := map[string]interface{}{
		"name": req.Name,
		"type": req.Type,
	}
	if err := updateByID(ctx, s.db.WithContext(ctx), &models.Category{}, categoryID, values, "Category not found"); err != nil {
		return nil, err
	}

	var updated models.Category
	if err := s.db.WithContext(ctx).Take(&updated, "id = ?", categoryID).Error; err != nil {
		return nil, database.FromDatabase(err, "Category not found")
	}
	return &CategoryResponse{Message: "Category updated!", Category: &updated}, nil
}

// Delete removes a category. Transactions and budgets referencing it keep
// their rows with the reference nulled.
func (s *CategoryService) Delete(ctx context.Context, id string) (*Message, error) {
	categoryID, err := parseUUID("category id", id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, s.db, &models.Category{}, categoryID, "Category not found"); err != nil {
		return nil, err
	}
	return &Message{Message: "Category deleted"}, nil
}
