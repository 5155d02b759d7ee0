package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrack/internal/database"
	"github.com/skillsenselab/fintrack/internal/server/middleware"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Category    *CategoryHandler
	Transaction *TransactionHandler
	Budget      *BudgetHandler
}

// RegisterRoutes mounts the API under /api. Auth routes are public; user,
// category, and budget routes require a bearer token. Transaction routes are
// left unauthenticated to match the upstream API contract.
// TODO: put transaction routes behind Auth once clients send tokens for them.
func RegisterRoutes(r *gin.Engine, h Handlers, parse middleware.TokenParser, db *database.DB) {
	r.GET("/health", Health(db))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	authed := middleware.Auth(parse)

	user := api.Group("/user", authed)
	user.GET("/:id", h.User.Get)
	user.PUT("/edit/:id", h.User.Update)
	user.DELETE("/delete/:id", h.User.Delete)

	category := api.Group("/category", authed)
	category.POST("/create", h.Category.Create)
	category.GET("/:user_id", h.Category.List)
	category.PUT("/edit/:id", h.Category.Update)
	category.DELETE("/delete/:id", h.Category.Delete)

	budget := api.Group("/budget", authed)
	budget.POST("/create", h.Budget.Create)
	budget.GET("/:user_id", h.Budget.List)
	budget.PUT("/edit/:id", h.Budget.Update)
	budget.DELETE("/delete/:id", h.Budget.Delete)

	transaction := api.Group("/transaction")
	transaction.POST("/create", h.Transaction.Create)
	transaction.GET("/:id/all", h.Transaction.List)
	transaction.GET("/:id", h.Transaction.Get)
	transaction.PUT("/edit/:id", h.Transaction.Update)
	transaction.DELETE("/delete/:id", h.Transaction.Delete)
}

// Health reports service health, including database reachability.
func Health(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		if db != nil {
			if err := db.PingContext(c.Request.Context()); err != nil {
				status = "unhealthy"
				httpStatus = http.StatusServiceUnavailable
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":    status,
			"service":   "fintrack",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
