// Package handler binds HTTP requests to the service layer. Handlers decode
// the request DTO, delegate, and map the result or error to a JSON response.
package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/server"
	"github.com/skillsenselab/fintrack/internal/service"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	accounts *service.AccountService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	resp, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	resp, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, resp)
}
