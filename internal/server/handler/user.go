package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/server"
	"github.com/skillsenselab/fintrack/internal/service"
)

// UserHandler serves profile reads, updates, and account deletion.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /api/user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"user": user})
}

// Update handles PUT /api/user/edit/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	resp, err := h.users.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, resp)
}

// Delete handles DELETE /api/user/delete/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	msg, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, msg)
}
