package authctx

import (
	"context"
	"testing"
)

type claims struct {
	UserID string
}

func TestSetGet(t *testing.T) {
	ctx := Set(context.Background(), &claims{UserID: "u1"})

	got, ok := Get[*claims](ctx)
	if !ok {
		t.Fatal("expected claims in context")
	}
	if got.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", got.UserID)
	}
}

func TestGetMissing(t *testing.T) {
	if _, ok := Get[*claims](context.Background()); ok {
		t.Error("expected no claims in empty context")
	}
}

func TestGetWrongType(t *testing.T) {
	ctx := Set(context.Background(), "not claims")
	if _, ok := Get[*claims](ctx); ok {
		t.Error("expected type mismatch to report missing claims")
	}
}
