package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/server"
	"github.com/skillsenselab/fintrack/internal/service"
)

// BudgetHandler serves budget CRUD.
type BudgetHandler struct {
	budgets *service.BudgetService
}

// NewBudgetHandler creates a BudgetHandler.
func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// Create handles POST /api/budget/create.
func (h *BudgetHandler) Create(c *gin.Context) {
	var req service.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	budget, err := h.budgets.Set(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, budget)
}

// List handles GET /api/budget/:user_id.
func (h *BudgetHandler) List(c *gin.Context) {
	budgets, err := h.budgets.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, budgets)
}

// Update handles PUT /api/budget/edit/:id.
func (h *BudgetHandler) Update(c *gin.Context) {
	var req service.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	budget, err := h.budgets.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, budget)
}

// Delete handles DELETE /api/budget/delete/:id.
func (h *BudgetHandler) Delete(c *gin.Context) {
	msg, err := h.budgets.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, msg)
}
