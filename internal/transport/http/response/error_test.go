package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskhub/task-service/internal/domain"
)

func writeAndRecord(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, err)

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec, body
}

func TestWriteError_KindToStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.ErrInvalidPassword(), http.StatusBadRequest, "Invalid password or email"},
		{"auth", domain.ErrTokenInvalid(), http.StatusUnauthorized, "invalid or expired token"},
		{"forbidden", domain.ErrPermissionDenied(), http.StatusForbidden, "permission denied"},
		{"not_found_user", domain.ErrUserNotFound(), http.StatusNotFound, "User not Found"},
		{"not_found_task", domain.ErrTaskNotFound(), http.StatusNotFound, "Task not found"},
		{"conflict", domain.ErrEmailAlreadyExists(), http.StatusConflict, "email already registered"},
		{"internal", domain.ErrInternal(errors.New("boom")), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := writeAndRecord(t, tc.err)
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if body.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tc.wantMsg)
			}
		})
	}
}

func TestWriteError_NonDomainErrorIs500(t *testing.T) {
	rec, body := writeAndRecord(t, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	// Internal details must not reach the client.
	if body.Message != "internal error" {
		t.Errorf("message = %q, want \"internal error\"", body.Message)
	}
}

func TestWriteError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), domain.ErrTaskNotFound())

	rec, body := writeAndRecord(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if body.Message != "Task not found" {
		t.Errorf("message = %q", body.Message)
	}
}
