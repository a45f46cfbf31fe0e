package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/task-service/internal/domain"
	"github.com/taskhub/task-service/internal/logger"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers inserts well-known dev accounts. Dev only.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		First string
		Last  string
		Email string
		Role  string
		Pass  string
	}

	seeds := []seedUser{
		{First: "Admin", Last: "Local", Email: "admin@example.com", Role: "admin", Pass: "AdminPassword123!"},
		{First: "User", Last: "Local", Email: "user@example.com", Role: "user", Pass: "UserPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			logger.Logger.Warn().Err(err).Str("email", s.Email).Msg("seed: hash failed")
			continue
		}

		u := domain.User{
			ID:           uuid.NewString(),
			FirstName:    s.First,
			LastName:     s.Last,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
		}

		// ignore duplicates (restart safe)
		if _, err := repo.Create(ctx, u); err != nil && !domain.Is(err, "email_already_exists") {
			logger.Logger.Warn().Err(err).Str("email", s.Email).Msg("seed: create failed")
		}
	}
}
