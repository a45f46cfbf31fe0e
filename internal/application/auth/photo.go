package auth

import (
	"context"
	"io"
	"strings"

	"github.com/taskhub/task-service/internal/domain"
)

// UpdatePhoto stores an uploaded photo and points the user's photo reference
// at it. Files are keyed by the client-supplied filename; a repeated name
// overwrites the previous upload.
func (s *Service) UpdatePhoto(ctx context.Context, userID, filename string, r io.Reader) (domain.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if strings.TrimSpace(filename) == "" {
		return domain.User{}, domain.ErrInvalidUpload("missing filename")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	path, err := s.photos.Save(ctx, filename, r)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.users.SetPhoto(ctx, u.ID, path); err != nil {
		return domain.User{}, err
	}

	s.audit("user.photo_updated", map[string]string{"user_id": u.ID})

	u.Photo = path
	return u, nil
}
