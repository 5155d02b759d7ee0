package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestUserGet(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())
	user := seedUser(t, db, "get@example.com")

	profile, err := svc.Get(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.ID != user.ID || profile.Email != user.Email {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestUserGetNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())

	_, err := svc.Get(context.Background(), uuid.NewString())
	wantAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUserGetRejectsMalformedID(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())

	_, err := svc.Get(context.Background(), "not-a-uuid")
	wantAppError(t, err, http.StatusBadRequest, "")
}

func TestUserUpdate(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())
	user := seedUser(t, db, "old@example.com")

	resp, err := svc.Update(context.Background(), user.ID.String(), UpdateUserRequest{
		Email:    "new@example.com",
		Username: "renamed",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Message != "User Updated!" {
		t.Errorf("message = %q, want %q", resp.Message, "User Updated!")
	}
	if resp.User.Email != "new@example.com" || resp.User.Username != "renamed" {
		t.Errorf("unexpected updated profile: %+v", resp.User)
	}
}

func TestUserUpdateEmailConflict(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())
	user := seedUser(t, db, "mine@example.com")
	seedUser(t, db, "theirs@example.com")

	_, err := svc.Update(context.Background(), user.ID.String(), UpdateUserRequest{
		Email:    "theirs@example.com",
		Username: "tester",
	})
	wantAppError(t, err, http.StatusConflict, "Email already in use")
}

func TestUserUpdateKeepingOwnEmail(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())
	user := seedUser(t, db, "same@example.com")

	// Re-submitting the account's current email is not a conflict.
	resp, err := svc.Update(context.Background(), user.ID.String(), UpdateUserRequest{
		Email:    "same@example.com",
		Username: "renamed",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.User.Username != "renamed" {
		t.Errorf("username = %q, want %q", resp.User.Username, "renamed")
	}
}

func TestUserUpdateNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())

	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateUserRequest{
		Email:    "ghost@example.com",
		Username: "ghost",
	})
	wantAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUserDelete(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())
	user := seedUser(t, db, "gone@example.com")

	msg, err := svc.Delete(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if msg.Message != "User deleted!" {
		t.Errorf("message = %q, want %q", msg.Message, "User deleted!")
	}

	_, err = svc.Get(context.Background(), user.ID.String())
	wantAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUserDeleteNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger())

	_, err := svc.Delete(context.Background(), uuid.NewString())
	wantAppError(t, err, http.StatusNotFound, "User not found")
}
