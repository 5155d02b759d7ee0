package validation

import (
	"net/http"
	"strings"
	"testing"

	"github.com/skillsenselab/fintrack/internal/errors"
)

type sampleRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Name   string  `json:"name" validate:"required,max=5"`
	Type   string  `json:"type" validate:"required,oneof=expense income"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func TestValidateOK(t *testing.T) {
	req := sampleRequest{Email: "a@example.com", Name: "food", Type: "expense", Amount: 1}
	if err := Validate(req); err != nil {
		t.Fatalf("Validate returned error for valid input: %v", err)
	}
}

func TestValidateFailureIsBadRequest(t *testing.T) {
	err := Validate(sampleRequest{})
	if err == nil {
		t.Fatal("expected error for empty struct")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", appErr.HTTPStatus)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrCodeInvalidInput)
	}
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	err := Validate(sampleRequest{Name: "toolongname", Type: "expense", Amount: 1})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, _ := errors.AsAppError(err)
	if !strings.Contains(appErr.Message, "email is required") {
		t.Errorf("message %q should name the json field `email`", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "name must be at most 5 characters") {
		t.Errorf("message %q should report the max violation on `name`", appErr.Message)
	}
}

func TestValidateCollectsFieldDetails(t *testing.T) {
	err := Validate(sampleRequest{Email: "nope", Name: "x", Type: "other", Amount: -1})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("details[fields] = %T, want []FieldError", appErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("got %d field errors, want 3: %+v", len(fields), fields)
	}
}
