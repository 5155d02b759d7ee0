package service

import (
	"context"

	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
	"github.com/skillsenselab/fintrack/internal/validation"
)

// BudgetService serves budget CRUD.
type BudgetService struct {
	db  *database.DB
	log *logger.Logger
}

// NewBudgetService creates a BudgetService.
func NewBudgetService(db *database.DB, log *logger.Logger) *BudgetService {
	return &BudgetService{db: db, log: log.WithComponent("budget")}
}

// BudgetRequest is the create/update payload.
type BudgetRequest struct {
	UserID     string  `json:"user_id" validate:"required,uuid"`
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// Set inserts a new budget for an existing user.
func (s *BudgetService) Set(ctx context.Context, req BudgetRequest) (*models.Budget, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseUUID("category_id", req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, userID); err != nil {
		return nil, err
	}

	budget := models.Budget{
		UserID:     userID,
		CategoryID: &categoryID,
		Amount:     req.Amount,
	}
	if err := s.db.WithContext(ctx).Create(&budget).Error; err != nil {
		return nil, database.FromDatabase(err, "Budget not found")
	}
	return &budget, nil
}

// GetByUser returns all budgets owned by the user.
func (s *BudgetService) GetByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	id, err := parseUUID("user_id", userID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, id); err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Find(&budgets).Error; err != nil {
		return nil, database.FromDatabase(err, "Budget not found")
	}
	if len(budgets) == 0 {
		return nil, apperrors.NotFound("No Budget found")
	}
	return budgets, nil
}

// Update changes a budget's category and amount.
func (s *BudgetService) Update(ctx context.Context, id string, req BudgetRequest) (*models.Budget, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	budgetID, err := parseUUID("budget id", id)
	if err != nil {
		return nil, err
	}
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseUUID("category_id", req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, userID); err != nil {
		return nil, err
	}

	values := map[string]interface{}{
		"category_id": categoryID,
		"amount":      req.Amount,
	}
	if err := updateByID(ctx, s.db.WithContext(ctx), &models.Budget{}, budgetID, values, "Budget not found"); err != nil {
		return nil, err
	}

	var updated models.Budget
	if err := s.db.WithContext(ctx).Take(&updated, "id = ?", budgetID).Error; err != nil {
		return nil, database.FromDatabase(err, "Budget not found")
	}
	return &updated, nil
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, id string) (*Message, error) {
	budgetID, err := parseUUID("budget id", id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, s.db, &models.Budget{}, budgetID, "Budget not found"); err != nil {
		return nil, err
	}
	return &Message{Message: "Budget deleted successfully"}, nil
}
