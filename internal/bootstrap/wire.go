package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/taskhub/task-service/internal/application/auth"
	"github.com/taskhub/task-service/internal/application/task"
	"github.com/taskhub/task-service/internal/config"
	"github.com/taskhub/task-service/internal/domain"
	"github.com/taskhub/task-service/internal/infrastructure/db/postgres"
	"github.com/taskhub/task-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/taskhub/task-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/taskhub/task-service/internal/infrastructure/security"
	"github.com/taskhub/task-service/internal/infrastructure/storage"
	"github.com/taskhub/task-service/internal/logger"
	http_handlers "github.com/taskhub/task-service/internal/transport/http/handlers"
	"github.com/taskhub/task-service/internal/transport/http/middleware"
	"github.com/taskhub/task-service/internal/transport/http/response"
	"github.com/taskhub/task-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

// Publisher is whatever satisfies both application-side publisher ports.
type Publisher interface {
	auth.EventPublisher
	task.EventPublisher
}

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string) (*sql.DB, error)

	NewPublisher func(rabbitURL string) (Publisher, error)

	NewPhotoStore func(dir, publicURL string) (auth.PhotoStore, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db + schema
	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if err := postgres.Migrate(context.Background(), db); err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	userRepo := postgres.NewUserRepo(db)
	taskRepo := postgres.NewTaskRepo(db)

	// 2) security
	hasher := security.NewBcryptHasher(12)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// seed (dev only)
	if cfg.Env == "dev" {
		postgres.SeedUsers(context.Background(), userRepo, hasher)
	}

	// 3) photo store
	photos, err := deps.NewPhotoStore(cfg.UploadDir, "/uploads")
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 4) publisher (best effort; events are supplementary)
	var pub Publisher = memory.NewNoopPublisher()
	if cfg.RabbitURL != "" {
		p, err := deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; events disabled")
		} else {
			if s, ok := p.(interface{ SetExchange(string) }); ok {
				s.SetExchange(cfg.RabbitExchange)
			}
			if c, ok := p.(interface{ Close() error }); ok {
				cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			}
			pub = p
		}
	}

	// 5) services
	authSvc := auth.NewService(userRepo, hasher, signer, photos, pub, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	taskSvc := task.NewService(taskRepo, pub)

	authSvc = authSvc.WithAudit(func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	})

	// 6) handlers + middleware
	rootH := http_handlers.NewRootHandler()
	healthH := http_handlers.NewHealthHandler(db)
	authH := http_handlers.NewAuthHandler(authSvc)
	taskH := http_handlers.NewTaskHandler(taskSvc)
	photoH := http_handlers.NewPhotoHandler(authSvc, cfg.MaxUploadSize)

	authMW := middleware.Auth(signer, response.WriteError)
	adminMW := middleware.RequireRole(string(domain.RoleAdmin), response.WriteError)
	bodyMW := middleware.BodyLimit(cfg.MaxUploadSize, response.WriteError)

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Root:   rootH,
		Health: healthH,
		Auth:   authH,
		Task:   taskH,
		Photo:  photoH,

		RequestIDMW: middleware.RequestID,
		BodyLimitMW: bodyMW,
		AuthMW:      authMW,
		AdminMW:     adminMW,

		UploadDir: cfg.UploadDir,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewPublisher: func(url string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url)
		},
		NewPhotoStore: func(dir, publicURL string) (auth.PhotoStore, error) {
			return storage.NewLocalStore(dir, publicURL)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
