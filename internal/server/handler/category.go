package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/server"
	"github.com/skillsenselab/fintrack/internal/service"
)

// CategoryHandler serves category CRUD.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Create handles POST /api/category/create.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	resp, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, resp)
}

// List handles GET /api/category/:user_id.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"result": categories})
}

// Update handles PUT /api/category/edit/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body is empty"))
		return
	}

	resp, err := h.categories.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, resp)
}

// Delete handles DELETE /api/category/delete/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	msg, err := h.categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, msg)
}
