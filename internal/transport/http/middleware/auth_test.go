package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskhub/task-service/internal/application/auth"
	"github.com/taskhub/task-service/internal/domain"
	"github.com/taskhub/task-service/internal/transport/http/response"
)

type stubVerifier struct {
	claims auth.TokenClaims
	err    error
}

func (v stubVerifier) VerifyAccessToken(token string) (auth.TokenClaims, error) {
	if v.err != nil {
		return auth.TokenClaims{}, v.err
	}
	return v.claims, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Message
}

func runAuth(verifier TokenVerifier, header string) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	Auth(verifier, response.WriteError)(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, reached := runAuth(stubVerifier{}, "")

	if reached {
		t.Fatal("handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "authentication required" {
		t.Errorf("message = %q", msg)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	for _, header := range []string{"Basic abc", "Bearer", "Bearer   "} {
		rec, reached := runAuth(stubVerifier{}, header)
		if reached {
			t.Errorf("%q: handler should not run", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuth_VerifierErrorPassesThrough(t *testing.T) {
	rec, reached := runAuth(stubVerifier{err: domain.ErrTokenExpired()}, "Bearer some-token")

	if reached {
		t.Fatal("handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "invalid or expired token" {
		t.Errorf("message = %q", msg)
	}
}

func TestAuth_EmptySubjectRejected(t *testing.T) {
	rec, reached := runAuth(stubVerifier{claims: auth.TokenClaims{UserID: "  "}}, "Bearer some-token")

	if reached {
		t.Fatal("handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_InjectsIdentity(t *testing.T) {
	var gotID, gotEmail, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotEmail, _ = EmailFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	verifier := stubVerifier{claims: auth.TokenClaims{
		UserID: "u-1",
		Email:  "alice@example.com",
		Role:   "admin",
	}}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	Auth(verifier, response.WriteError)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != "u-1" || gotEmail != "alice@example.com" || gotRole != "admin" {
		t.Errorf("identity = (%q, %q, %q)", gotID, gotEmail, gotRole)
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	verifier := stubVerifier{claims: auth.TokenClaims{UserID: "u-1"}}

	rec, reached := runAuth(verifier, "bearer good-token")
	if !reached {
		t.Fatalf("handler should run, status = %d", rec.Code)
	}
}
