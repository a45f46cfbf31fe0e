package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type RootHandler interface {
	Greet(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PhotoHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Root   RootHandler
	Health HealthHandler
	Auth   AuthHandler
	Task   TaskHandler
	Photo  PhotoHandler

	RequestIDMW func(http.Handler) http.Handler
	BodyLimitMW func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler
	AdminMW     func(http.Handler) http.Handler

	// UploadDir, when set, is served under /uploads/ for stored photos.
	UploadDir string
}

func New(deps Deps) (http.Handler, error) {
	if deps.Root == nil {
		return nil, fmt.Errorf("nil Root handler")
	}
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Task == nil {
		return nil, fmt.Errorf("nil Task handler")
	}
	if deps.Photo == nil {
		return nil, fmt.Errorf("nil Photo handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()

	if deps.RequestIDMW != nil {
		r.Use(deps.RequestIDMW)
	}

	r.Get("/", deps.Root.Greet)
	r.Get("/healthz", deps.Health.Healthz)

	// The upload route manages its own multipart size cap, so the JSON body
	// limit applies only to the credential endpoints.
	if deps.BodyLimitMW != nil {
		r.With(deps.BodyLimitMW).Post("/register", deps.Auth.Register)
		r.With(deps.BodyLimitMW).Post("/login", deps.Auth.Login)
	} else {
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
	}

	r.Put("/photo/{id}", deps.Photo.Upload)

	r.Route("/tasks", func(r chi.Router) {
		r.With(deps.AuthMW).Get("/", deps.Task.List)
		r.With(deps.AuthMW).Post("/", deps.Task.Create)

		r.Get("/{id}", deps.Task.Get)
		r.With(deps.AuthMW, deps.AdminMW).Put("/{id}", deps.Task.Update)
		r.With(deps.AuthMW, deps.AdminMW).Delete("/{id}", deps.Task.Delete)
	})

	if deps.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r, nil
}
