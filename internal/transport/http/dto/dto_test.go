package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/taskhub/task-service/internal/domain"
)

func TestRegisterRequest_Validate(t *testing.T) {
	cases := []struct {
		name     string
		req      RegisterRequest
		wantCode string
	}{
		{"valid", RegisterRequest{Email: "a@example.com", Password: "pw"}, ""},
		{"valid with role", RegisterRequest{Email: "a@example.com", Password: "pw", Role: "admin"}, ""},
		{"missing email", RegisterRequest{Password: "pw"}, "missing_field"},
		{"missing password", RegisterRequest{Email: "a@example.com"}, "missing_field"},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "pw"}, "invalid_field"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !domain.Is(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	if err := (&LoginRequest{Email: "a@example.com", Password: "pw"}).Validate(); err != nil {
		t.Fatalf("valid request: %v", err)
	}
	if err := (&LoginRequest{Password: "pw"}).Validate(); !domain.Is(err, "missing_field") {
		t.Errorf("missing email: expected missing_field, got %v", err)
	}
	if err := (&LoginRequest{Email: "a@example.com"}).Validate(); !domain.Is(err, "missing_field") {
		t.Errorf("missing password: expected missing_field, got %v", err)
	}
}

func TestValidationErrorsUseJSONFieldNames(t *testing.T) {
	err := (&RegisterRequest{Email: "a@example.com"}).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "password") {
		t.Errorf("error should name the json field, got %q", got)
	}
}

func TestUserViewNeverExposesPasswordHash(t *testing.T) {
	u := domain.User{
		ID:           "u-1",
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         "user",
	}

	b, err := json.Marshal(NewUserView(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for k, v := range m {
		if s, ok := v.(string); ok && s == "$2a$10$secret" {
			t.Fatalf("password hash leaked under key %q", k)
		}
	}
	if _, ok := m["password"]; ok {
		t.Error("view must not carry a password key")
	}
	if _, ok := m["photo"]; ok {
		t.Error("empty photo should be omitted")
	}
}
