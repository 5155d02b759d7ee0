package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/skillsenselab/fintrack/internal/models"
)

func TestRegister(t *testing.T) {
	db := testDB(t)
	svc := NewAccountService(db, testHasher(), testTokens(t), testLogger())

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.User.Email != "alice@example.com" || resp.User.Username != "alice" {
		t.Errorf("unexpected public profile: %+v", resp.User)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected a token pair on registration")
	}

	var stored models.User
	if err := db.WithContext(context.Background()).Take(&stored, "email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.Password == "pw123" || !strings.HasPrefix(stored.Password, "$2") {
		t.Error("password must be stored as a bcrypt hash")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := NewAccountService(db, testHasher(), testTokens(t), testLogger())
	seedUser(t, db, "taken@example.com")

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bob",
		Email:    "taken@example.com",
		Password: "pw123",
	})
	wantAppError(t, err, http.StatusConflict, "Email already exists")

	if n := countRows(t, db, &models.User{}); n != 1 {
		t.Errorf("user rows = %d, want 1 (conflict must not create a row)", n)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testDB(t)
	svc := NewAccountService(db, testHasher(), testTokens(t), testLogger())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@example.com", Password: "pw"}},
		{"missing email", RegisterRequest{Username: "a", Password: "pw"}},
		{"missing password", RegisterRequest{Username: "a", Email: "a@example.com"}},
		{"malformed email", RegisterRequest{Username: "a", Email: "not-an-email", Password: "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			wantAppError(t, err, http.StatusBadRequest, "")
		})
	}

	if n := countRows(t, db, &models.User{}); n != 0 {
		t.Errorf("user rows = %d, want 0 (rejected input must not create rows)", n)
	}
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAccountService(db, testHasher(), testTokens(t), testLogger())
	user := seedUser(t, db, "carol@example.com")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "carol@example.com",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.ID != user.ID {
		t.Errorf("logged-in user id = %s, want %s", resp.User.ID, user.ID)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected a fresh token pair on login")
	}
}

func TestLoginFailureModesAreIndistinguishable(t *testing.T) {
	db := testDB(t)
	svc := NewAccountService(db, testHasher(), testTokens(t), testLogger())
	seedUser(t, db, "dave@example.com")

	_, unknownErr := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "pw123",
	})
	unknown := wantAppError(t, unknownErr, http.StatusUnauthorized, "invalid credentials")

	_, wrongErr := svc.Login(context.Background(), LoginRequest{
		Email:    "dave@example.com",
		Password: "wrong",
	})
	wrong := wantAppError(t, wrongErr, http.StatusUnauthorized, "invalid credentials")

	if unknown.Message != wrong.Message || unknown.Code != wrong.Code || unknown.HTTPStatus != wrong.HTTPStatus {
		t.Error("unknown-email and wrong-password errors must be identical")
	}
}

func TestLoginIssuesDistinctPairsPerCall(t *testing.T) {
	db := testDB(t)
	svc := NewAccountService(db, testHasher(), testTokens(t), testLogger())
	seedUser(t, db, "erin@example.com")

	req := LoginRequest{Email: "erin@example.com", Password: "pw123"}
	first, err := svc.Login(context.Background(), req)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(context.Background(), req)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.RefreshToken == second.RefreshToken {
		t.Error("each login must mint a refresh token with a fresh jti")
	}
}
