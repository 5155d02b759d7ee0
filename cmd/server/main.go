package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/driver/postgres"

	"github.com/skillsenselab/fintrack/internal/auth/password"
	"github.com/skillsenselab/fintrack/internal/auth/token"
	"github.com/skillsenselab/fintrack/internal/config"
	"github.com/skillsenselab/fintrack/internal/database"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
	"github.com/skillsenselab/fintrack/internal/server"
	"github.com/skillsenselab/fintrack/internal/server/handler"
	"github.com/skillsenselab/fintrack/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Init(cfg.Log)
	log := logger.GetGlobalLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("Server exited with error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	db, err := database.New(ctx, postgres.Open(cfg.Database.DSN), cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return err
		}
	}

	tokens, err := token.NewService(cfg.Auth.Config)
	if err != nil {
		return err
	}
	hasher := password.NewBcryptHasher(password.WithCost(cfg.Auth.BcryptCost))

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(service.NewAccountService(db, hasher, tokens, log)),
		User:        handler.NewUserHandler(service.NewUserService(db, log)),
		Category:    handler.NewCategoryHandler(service.NewCategoryService(db, log)),
		Transaction: handler.NewTransactionHandler(service.NewTransactionService(db, log)),
		Budget:      handler.NewBudgetHandler(service.NewBudgetService(db, log)),
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	handler.RegisterRoutes(srv.GinEngine(), handlers, tokens.ParseAccessToken, db)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}
