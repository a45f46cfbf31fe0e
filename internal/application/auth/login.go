package auth

import (
	"context"
	"strings"

	"github.com/taskhub/task-service/internal/domain"
)

type LoginResult struct {
	User      domain.User
	Token     string
	ExpiresIn int64 // seconds
}

// Login authenticates a user and issues an access token.
//
// An unknown email and a wrong password are reported as different failures
// (user_not_found vs invalid_password); existing clients depend on the split.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidPassword()
	}

	token, err := s.signer.SignAccessToken(u.ID, u.Email, u.Role, s.accessTTL)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("user.logged_in", map[string]string{"user_id": u.ID})

	return LoginResult{
		User:      u,
		Token:     token,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}
