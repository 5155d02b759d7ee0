package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requestIDRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestRequestIDGenerated(t *testing.T) {
	r, seen := requestIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(HeaderRequestID)
	if id == "" {
		t.Fatal("expected a generated request id header")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", id, err)
	}
	if *seen != id {
		t.Errorf("handler saw %q, response header carries %q", *seen, id)
	}
}

func TestRequestIDPreservesInbound(t *testing.T) {
	r, seen := requestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "upstream-id-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "upstream-id-7" {
		t.Errorf("response id = %q, want the inbound id", got)
	}
	if *seen != "upstream-id-7" {
		t.Errorf("handler saw %q, want the inbound id", *seen)
	}
}

func TestRequestIDFromWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := RequestIDFrom(c); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
