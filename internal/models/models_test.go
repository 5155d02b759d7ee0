package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBeforeCreateAssignsID(t *testing.T) {
	u := User{Username: "a", Email: "a@example.com", Password: "hash"}
	if err := u.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
}

func TestBeforeCreateKeepsExplicitID(t *testing.T) {
	id := uuid.New()
	u := User{ID: id}
	if err := u.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if u.ID != id {
		t.Error("explicit id must be preserved")
	}
}

func TestUserJSONOmitsPassword(t *testing.T) {
	u := User{ID: uuid.New(), Username: "a", Email: "a@example.com", Password: "super-secret-hash"}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "super-secret-hash") {
		t.Error("password hash must never serialize")
	}
}

func TestPublicProfile(t *testing.T) {
	u := User{ID: uuid.New(), Username: "a", Email: "a@example.com", Password: "hash"}
	p := u.Public()
	if p.ID != u.ID || p.Email != u.Email || p.Username != u.Username {
		t.Errorf("unexpected public profile: %+v", p)
	}
}
