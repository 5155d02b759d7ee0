package service

import (
	"context"
	"time"

	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
	"github.com/skillsenselab/fintrack/internal/validation"
)

const dateLayout = "2006-01-02"

// TransactionService serves transaction CRUD.
type TransactionService struct {
	db  *database.DB
	log *logger.Logger
}

// NewTransactionService creates a TransactionService.
func NewTransactionService(db *database.DB, log *logger.Logger) *TransactionService {
	return &TransactionService{db: db, log: log.WithComponent("transaction")}
}

// TransactionRequest is the create/update payload.
type TransactionRequest struct {
	UserID          string  `json:"user_id" validate:"required,uuid"`
	CategoryID      string  `json:"category_id" validate:"required,uuid"`
	Type            string  `json:"type" validate:"required,oneof=expense income"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description" validate:"max=1000"`
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
}

// Create inserts a new transaction for an existing user.
func (s *TransactionService) Create(ctx context.Context, req TransactionRequest) (*models.Transaction, error) {
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

	date, _ := time.Parse(dateLayout, req.TransactionDate)
	transaction := models.Transaction{
		UserID:          userID,
		CategoryID:      &categoryID,
		Type:            models.EntryType(req.Type),
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
	}
	if err := s.db.WithContext(ctx).Create(&transaction).Error; err != nil {
		return nil, database.FromDatabase(err, "Transaction not found")
	}
	return &transaction, nil
}

// ListByUser returns all transactions owned by the user.
func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	id, err := parseUUID("user_id", userID)
	if err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.db, id); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Find(&transactions).Error; err != nil {
		return nil, database.FromDatabase(err, "Transaction not found")
	}
	if len(transactions) == 0 {
		return nil, apperrors.NotFound("No transactions found for this user")
	}
	return transactions, nil
}

// Get returns a single transaction by id.
func (s *TransactionService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	transactionID, err := parseUUID("transaction id", id)
	if err != nil {
		return nil, err
	}

	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Take(&transaction, "id = ?", transactionID).Error; err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperrors.NotFound("Transaction not found")
		}
		return nil, database.FromDatabase(err, "Transaction not found")
	}
	return &transaction, nil
}

// Update replaces a transaction's mutable fields.
func (s *TransactionService) Update(ctx context.Context, id string, req TransactionRequest) (*models.Transaction, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	transactionID, err := parseUUID("transaction id", id)
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

	date, _ := time.Parse(dateLayout, req.TransactionDate)
	values := map[string]interface{}{
		"type":             req.Type,
		"amount":           req.Amount,
		"description":      req.Description,
		"transaction_date": date,
		"category_id":      categoryID,
	}
	if err := updateByID(ctx, s.db.WithContext(ctx), &models.Transaction{}, transactionID, values, "Transaction not found"); err != nil {
		return nil, err
	}

	var updated models.Transaction
	if err := s.db.WithContext(ctx).Take(&updated, "id = ?", transactionID).Error; err != nil {
		return nil, database.FromDatabase(err, "Transaction not found")
	}
	return &updated, nil
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, id string) (*Message, error) {
	transactionID, err := parseUUID("transaction id", id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, s.db, &models.Transaction{}, transactionID, "Transaction not found"); err != nil {
		return nil, err
	}
	return &Message{Message: "Transaction deleted successfully"}, nil
}
