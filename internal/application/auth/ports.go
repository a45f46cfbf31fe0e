package auth

import (
	"context"
	"io"
	"time"

	"github.com/taskhub/task-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth flow needs, not HOW it's stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	SetPhoto(ctx context.Context, userID string, photo string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by the service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID, email, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}

/*
PhotoStore
----------
Writes uploaded photo bytes and returns the public path of the stored file.
*/
type PhotoStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

/*
EventPublisher
--------------
Best-effort lifecycle events. Publish failures must never fail a request.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
}

type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
