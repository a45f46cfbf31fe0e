package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/taskhub/task-service/internal/domain"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string // optional, defaults to "user"
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if in.Password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = string(domain.RoleUser)
	}
	if !domain.IsValidRole(role) {
		return domain.User{}, domain.ErrInvalidRole(role)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	s.audit("user.registered", map[string]string{"user_id": created.ID, "role": created.Role})

	// Best effort; a down broker must not fail the registration.
	_ = s.pub.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID: created.ID,
		Email:  created.Email,
		Role:   created.Role,
	})

	return created, nil
}
