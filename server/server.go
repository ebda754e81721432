package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedintake/pkg/config"
	"github.com/umputun/feedintake/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/intake.go -pkg mocks -skip-ensure -fmt goimports . Intake

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	intake    Intake
	metrics   http.Handler
	version   string
	debug     bool
	templates *template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Intake is the form controller used by handlers
type Intake interface {
	RequiredFields() []domain.Field
	LoadPrevious(ctx context.Context, email string) ([]domain.Request, error)
	ListAll(ctx context.Context, limit int) ([]domain.Request, error)
	Get(ctx context.Context, id string) (*domain.Request, error)
	SaveDraft(ctx context.Context, form domain.Form, id string) (*domain.Request, error)
	Submit(ctx context.Context, form domain.Form, id string) (*domain.Request, error)
	MarkComplete(ctx context.Context, id string) (*domain.Request, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetIntakeConfig() config.IntakeConfig
}

// New initializes a new server instance. metrics handler is optional, /metrics is not served without it.
func New(cfg ConfigProvider, svc Intake, metrics http.Handler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		intake:    svc,
		metrics:   metrics,
		version:   version,
		debug:     debug,
		templates: template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// ServeHTTP makes Server usable as http.Handler, mostly for tests
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedintake", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// web UI
	s.router.HandleFunc("GET /{$}", s.formPageHandler)
	s.router.HandleFunc("GET /requests", s.requestsListHandler)
	s.router.HandleFunc("GET /requests/{id}", s.requestPageHandler)
	s.router.HandleFunc("POST /requests", s.saveFormHandler)
	s.router.HandleFunc("POST /requests/{id}", s.saveFormHandler)
	s.router.HandleFunc("POST /requests/{id}/complete", s.completeFormHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /requests", s.listRequestsHandler)
		r.HandleFunc("GET /requests/{id}", s.getRequestHandler)
		r.HandleFunc("POST /requests", s.createRequestHandler)
		r.HandleFunc("PUT /requests/{id}", s.updateRequestHandler)
		r.HandleFunc("POST /requests/{id}/complete", s.completeRequestHandler)
	})

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}
}
