package postgres

import (
	"database/sql"

	"github.com/taskhub/task-service/internal/domain"
)

// userRow mirrors the users table. Photo is nullable.
type userRow struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	Photo        sql.NullString
	CreatedAt    sql.NullTime
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		FirstName:    ur.FirstName,
		LastName:     ur.LastName,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		Role:         ur.Role,
		Photo:        ur.Photo.String,
	}
}
