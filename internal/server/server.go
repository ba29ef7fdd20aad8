package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/studenthub/apiserver/config"
	"github.com/studenthub/apiserver/internal/db"
	"github.com/studenthub/apiserver/internal/handlers"
	"github.com/studenthub/apiserver/internal/services"
	"github.com/studenthub/apiserver/internal/storage"
	"github.com/studenthub/apiserver/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// Server wraps the HTTP server, router, and database client.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	client     *mongo.Client
	logger     *slog.Logger
}

// New wires the full dependency chain: Mongo client, repositories,
// services, media storage, handlers, and routes.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	database := db.Database(client, cfg)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensuring indexes: %w", err)
	}

	userRepo := store.NewUserRepository(database)
	postRepo := store.NewPostRepository(database)
	libraryRepo := store.NewLibraryRepository(database)

	userService := services.NewUserService(userRepo)
	feedService := services.NewFeedService(postRepo)
	postService := services.NewPostService(postRepo)
	libraryService := services.NewLibraryService(libraryRepo)

	media, err := newMediaStorage(ctx, cfg, logger)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/", handlers.Root)
	router.Get("/health", handlers.Healthz)
	router.Get("/api/health", handlers.Healthz)

	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	router.Route("/api/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, media, jwtSecret)
	})
	router.Route("/api/blog", func(r chi.Router) {
		handlers.BlogRouter(r, feedService, postService, media)
	})
	router.Route("/api/papers", func(r chi.Router) {
		handlers.PapersRouter(r, libraryService, media)
	})
	router.Route("/api/ebooks", func(r chi.Router) {
		handlers.EbooksRouter(r, libraryService)
	})
	router.Get("/api/student-info", handlers.StudentInfoHandler(libraryService))

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		client:     client,
		logger:     logger,
	}, nil
}

// newMediaStorage builds the configured object storage backend. An
// unconfigured backend is not fatal: the server starts and the upload
// endpoints report storage as unavailable.
func newMediaStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (*storage.Storage, error) {
	var backend storage.ObjectStorage

	switch cfg.Storage.Backend {
	case "minio":
		if strings.TrimSpace(cfg.Storage.Minio.Endpoint) == "" {
			logger.Warn("minio endpoint not set, media uploads disabled")
			return nil, nil
		}
		client, err := storage.NewMinioClient(cfg.Storage.Minio)
		if err != nil {
			return nil, fmt.Errorf("configuring minio: %w", err)
		}
		backend = client
	case "gcs":
		if strings.TrimSpace(cfg.Storage.GCS.Bucket) == "" {
			logger.Warn("gcs bucket not set, media uploads disabled")
			return nil, nil
		}
		client, err := storage.NewGCSClient(ctx, cfg.Storage.GCS)
		if err != nil {
			return nil, fmt.Errorf("configuring gcs: %w", err)
		}
		backend = client
	case "":
		logger.Warn("no storage backend configured, media uploads disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	media := storage.NewStorage(backend)
	if err := media.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensuring media bucket: %w", err)
	}
	logger.Info("media storage ready",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("bucket", media.Bucket()),
	)
	return media, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and closes the database client.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.client != nil {
		if derr := s.client.Disconnect(ctx); derr != nil && err == nil {
			err = derr
		}
	}
	return err
}
