package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrack/internal/auth/token"
)

// The logger runs after the handler chain, so it must see the claims the auth
// middleware attached and the id the request-id middleware tagged.
func TestRequestLoggerRunsAfterAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc, err := token.NewService(token.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
	})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	access, err := svc.GenerateAccessToken("user-42")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.GET("/protected", Auth(svc.ParseAccessToken), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a request id header on the logged request")
	}
}

func TestRequestLoggerSkipsNothingOnFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.GET("/protected", Auth(rejectAll), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The logger must tolerate requests that never reached the handler and
	// carry no claims.
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
