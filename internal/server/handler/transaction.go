package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/server"
	"github.com/skillsenselab/fintrack/internal/service"
)

// TransactionHandler serves transaction CRUD.
type TransactionHandler struct {
	transactions *service.TransactionService
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Create handles POST /api/transaction/create.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req service.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	transaction, err := h.transactions.Create(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, transaction)
}

// List handles GET /api/transaction/:id/all, where :id is the owning user.
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.transactions.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, transactions)
}

// Get handles GET /api/transaction/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	transaction, err := h.transactions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, transaction)
}

// Update handles PUT /api/transaction/edit/:id.
func (h *TransactionHandler) Update(c *gin.Context) {
	var req service.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	transaction, err := h.transactions.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, transaction)
}

// Delete handles DELETE /api/transaction/delete/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	msg, err := h.transactions.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, msg)
}
