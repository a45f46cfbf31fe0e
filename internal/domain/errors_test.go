package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs_MatchesCode(t *testing.T) {
	err := ErrTaskNotFound()

	if !Is(err, "task_not_found") {
		t.Error("Is should match the error's code")
	}
	if Is(err, "user_not_found") {
		t.Error("Is should not match a different code")
	}
	if Is(nil, "task_not_found") {
		t.Error("Is(nil) should be false")
	}
	if Is(errors.New("plain"), "task_not_found") {
		t.Error("Is should be false for non-domain errors")
	}
}

func TestIs_SeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrUserNotFound())

	if !Is(wrapped, "user_not_found") {
		t.Error("Is should unwrap to find the domain error")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrStoreFailure(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

// These strings are part of the wire contract; existing clients match on them.
func TestClientFacingMessages(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{ErrUserNotFound(), "User not Found"},
		{ErrTaskNotFound(), "Task not found"},
		{ErrInvalidPassword(), "Invalid password or email"},
	}
	for _, tc := range cases {
		if tc.err.Message != tc.want {
			t.Errorf("%s: Message = %q, want %q", tc.err.Code, tc.err.Message, tc.want)
		}
	}
}

func TestTokenErrorsShareOneMessage(t *testing.T) {
	if ErrTokenInvalid().Message != ErrTokenExpired().Message {
		t.Error("invalid and expired tokens must be indistinguishable to clients")
	}
	if ErrTokenInvalid().Code == ErrTokenExpired().Code {
		t.Error("codes must stay distinct for internal handling")
	}
}
