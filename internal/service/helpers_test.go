package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"

	"github.com/skillsenselab/fintrack/internal/auth/password"
	"github.com/skillsenselab/fintrack/internal/auth/token"
	"github.com/skillsenselab/fintrack/internal/database"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/models"
)

// testDB opens an isolated in-memory SQLite database named after the test and
// migrates the full schema into it.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	cfg := database.Config{
		DSN:          dsn,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		MaxRetries:   1,
		LogLevel:     "silent",
	}

	db, err := database.New(context.Background(), sqlite.Open(dsn), cfg, testLogger())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func testLogger() *logger.Logger {
	return logger.NewDefault("fintrack-test")
}

func testHasher() password.Hasher {
	return password.NewBcryptHasher(password.WithCost(bcrypt.MinCost))
}

func testTokens(t *testing.T) *token.Service {
	t.Helper()
	svc, err := token.NewService(token.Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
	})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

// seedUser inserts an account directly and returns it.
func seedUser(t *testing.T, db *database.DB, email string) models.User {
	t.Helper()

	hash, err := testHasher().Hash("pw123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: "tester", Email: email, Password: hash}
	if err := db.WithContext(context.Background()).Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// seedCategory inserts a category for the given user and returns it.
func seedCategory(t *testing.T, db *database.DB, user models.User) models.Category {
	t.Helper()

	category := models.Category{UserID: user.ID, Name: "Groceries", Type: models.TypeExpense}
	if err := db.WithContext(context.Background()).Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

// wantAppError asserts err is an *AppError with the given status and message.
func wantAppError(t *testing.T, err error, status int, message string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error %d %q, got nil", status, message)
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != status {
		t.Errorf("status = %d, want %d (err: %v)", appErr.HTTPStatus, status, err)
	}
	if message != "" && appErr.Message != message {
		t.Errorf("message = %q, want %q", appErr.Message, message)
	}
	return appErr
}

// countRows returns the number of rows matching the model.
func countRows(t *testing.T, db *database.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.WithContext(context.Background()).Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
