package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/skillsenselab/fintrack/internal/models"
)

func TestBudgetSet(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budget@example.com")
	category := seedCategory(t, db, user)

	budget, err := svc.Set(context.Background(), BudgetRequest{
		UserID:     user.ID.String(),
		CategoryID: category.ID.String(),
		Amount:     500,
	})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if budget.UserID != user.ID || budget.Amount != 500 {
		t.Errorf("unexpected budget: %+v", budget)
	}
	if budget.CategoryID == nil || *budget.CategoryID != category.ID {
		t.Error("category reference not stored")
	}
}

func TestBudgetSetValidation(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budgetval@example.com")
	category := seedCategory(t, db, user)

	tests := []struct {
		name string
		req  BudgetRequest
	}{
		{"missing user_id", BudgetRequest{CategoryID: category.ID.String(), Amount: 100}},
		{"missing category_id", BudgetRequest{UserID: user.ID.String(), Amount: 100}},
		{"zero amount", BudgetRequest{UserID: user.ID.String(), CategoryID: category.ID.String()}},
		{"negative amount", BudgetRequest{UserID: user.ID.String(), CategoryID: category.ID.String(), Amount: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Set(context.Background(), tt.req)
			wantAppError(t, err, http.StatusBadRequest, "")
		})
	}

	if n := countRows(t, db, &models.Budget{}); n != 0 {
		t.Errorf("budget rows = %d, want 0", n)
	}
}

func TestBudgetGetByUser(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budgetget@example.com")
	category := seedCategory(t, db, user)

	if _, err := svc.Set(context.Background(), BudgetRequest{
		UserID:     user.ID.String(),
		CategoryID: category.ID.String(),
		Amount:     250,
	}); err != nil {
		t.Fatalf("seed budget: %v", err)
	}

	budgets, err := svc.GetByUser(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(budgets) != 1 || budgets[0].Amount != 250 {
		t.Errorf("unexpected budgets: %+v", budgets)
	}
}

func TestBudgetGetByUserEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budgetempty@example.com")

	_, err := svc.GetByUser(context.Background(), user.ID.String())
	wantAppError(t, err, http.StatusNotFound, "No Budget found")
}

func TestBudgetUpdate(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budgetupdate@example.com")
	category := seedCategory(t, db, user)

	budget, err := svc.Set(context.Background(), BudgetRequest{
		UserID:     user.ID.String(),
		CategoryID: category.ID.String(),
		Amount:     100,
	})
	if err != nil {
		t.Fatalf("seed budget: %v", err)
	}

	updated, err := svc.Update(context.Background(), budget.ID.String(), BudgetRequest{
		UserID:     user.ID.String(),
		CategoryID: category.ID.String(),
		Amount:     750,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 750 {
		t.Errorf("amount = %v, want 750", updated.Amount)
	}
}

func TestBudgetUpdateNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budgetnoupdate@example.com")
	category := seedCategory(t, db, user)

	_, err := svc.Update(context.Background(), uuid.NewString(), BudgetRequest{
		UserID:     user.ID.String(),
		CategoryID: category.ID.String(),
		Amount:     10,
	})
	wantAppError(t, err, http.StatusNotFound, "Budget not found")
}

func TestBudgetDelete(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())
	user := seedUser(t, db, "budgetdelete@example.com")
	category := seedCategory(t, db, user)

	budget, err := svc.Set(context.Background(), BudgetRequest{
		UserID:     user.ID.String(),
		CategoryID: category.ID.String(),
		Amount:     100,
	})
	if err != nil {
		t.Fatalf("seed budget: %v", err)
	}

	msg, err := svc.Delete(context.Background(), budget.ID.String())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if msg.Message != "Budget deleted successfully" {
		t.Errorf("message = %q, want %q", msg.Message, "Budget deleted successfully")
	}
	if n := countRows(t, db, &models.Budget{}); n != 0 {
		t.Errorf("budget rows = %d, want 0", n)
	}
}

func TestBudgetDeleteNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db, testLogger())

	_, err := svc.Delete(context.Background(), uuid.NewString())
	wantAppError(t, err, http.StatusNotFound, "Budget not found")
}
