package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/task-service/internal/application/auth"
	"github.com/taskhub/task-service/internal/domain"
	"github.com/taskhub/task-service/internal/logger"
	"github.com/taskhub/task-service/internal/transport/http/dto"
	"github.com/taskhub/task-service/internal/transport/http/response"
)

// photoFieldName is the multipart form field existing clients upload under.
const photoFieldName = "demo_image"

type PhotoHandler struct {
	svc     *auth.Service
	maxSize int64
}

func NewPhotoHandler(svc *auth.Service, maxSize int64) *PhotoHandler {
	if maxSize <= 0 {
		maxSize = 1 << 20
	}
	return &PhotoHandler{svc: svc, maxSize: maxSize}
}

// Upload stores a single photo for the user in the URL and updates the
// user's photo reference.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		response.WriteError(w, r, domain.ErrInvalidUpload("could not parse multipart body"))
		return
	}

	file, header, err := r.FormFile(photoFieldName)
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidUpload("missing file field "+photoFieldName))
		return
	}
	defer file.Close()

	u, err := h.svc.UpdatePhoto(r.Context(), userID, header.Filename, file)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("user_id", u.ID).
		Str("photo", u.Photo).
		Msg("photo_uploaded")

	response.Created(w, dto.NewUserView(u))
}
