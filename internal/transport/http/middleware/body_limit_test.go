package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskhub/task-service/internal/transport/http/response"
)

func TestBodyLimit_RejectsOversizedDeclaredBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = 64
	rec := httptest.NewRecorder()

	BodyLimit(16, response.WriteError)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestBodyLimit_AllowsSmallBody(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("ok"))
	rec := httptest.NewRecorder()

	BodyLimit(16, response.WriteError)(next).ServeHTTP(rec, req)

	if !reached || rec.Code != http.StatusOK {
		t.Errorf("reached = %v, status = %d", reached, rec.Code)
	}
}
