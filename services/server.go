package services

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	ws "github.com/dtaccel/backend/websocket"
)

// Server holds all server dependencies
type Server struct {
	config *Config
	gormDB *repository.GORMRepository
	pool   *pgxpool.Pool

	clientService      *ClientService
	assessmentService  *AssessmentService
	projectService     *ProjectService
	consultantService  *ConsultantService
	authService        *AuthService
	authEndpoints      *AuthEndpoints
	clientEndpoints    *ClientEndpoints
	assessmentEndpoints *AssessmentEndpoints
	projectEndpoints   *ProjectEndpoints
	consultantEndpoints *ConsultantEndpoints
	catalogEndpoints   *CatalogEndpoints

	wsHub    *ws.Hub
	upgrader websocket.Upgrader
}

// NewServer creates a new server instance
func NewServer(config *Config) *Server {
	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return CheckOrigin(r, config.WebSocket.AllowedOrigins)
			},
		},
	}
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *repository.GORMRepository, pool *pgxpool.Pool) {
	s.gormDB = db
	s.pool = pool
}

// InitializeServices initializes all server services
func (s *Server) InitializeServices() error {
	s.wsHub = ws.NewHub()
	go s.wsHub.Run()

	if s.gormDB == nil {
		slog.Warn("Database not configured, API routes disabled")
		return nil
	}

	s.clientService = NewClientService(s.gormDB)
	s.assessmentService = NewAssessmentService(s.gormDB, s.wsHub)
	s.projectService = NewProjectService(s.gormDB, s.wsHub)
	s.consultantService = NewConsultantService(s.gormDB)

	s.clientEndpoints = NewClientEndpoints(s.gormDB, s.clientService)
	s.assessmentEndpoints = NewAssessmentEndpoints(s.gormDB, s.assessmentService)
	s.projectEndpoints = NewProjectEndpoints(s.gormDB, s.projectService)
	s.consultantEndpoints = NewConsultantEndpoints(s.gormDB, s.consultantService)
	s.catalogEndpoints = NewCatalogEndpoints(s.gormDB)
	slog.Info("Domain services initialized")

	if s.config.JWT.Secret != "" {
		s.authService = NewAuthService(s.gormDB, s.config.JWT.Secret)
		s.authEndpoints = NewAuthEndpoints(s.authService)
		slog.Info("Authentication service initialized")
	}

	return nil
}

// SetupRoutes configures all HTTP routes
func (s *Server) SetupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health endpoint
	r.Get("/health", s.healthHandler)

	// API v1 route group
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", s.apiV1Handler)

		// Dashboard event feed (protected)
		if s.authService != nil {
			r.Group(func(r chi.Router) {
				r.Use(s.authService.Middleware)
				r.Get("/ws", s.websocketHandlerFunc)
			})
		} else {
			r.Get("/ws", s.websocketHandlerFunc)
		}

		// Authentication routes
		if s.authEndpoints != nil {
			r.Route("/auth", func(r chi.Router) {
				// Public auth routes (no middleware)
				r.Post("/login", s.authEndpoints.LoginHandler)
				r.Post("/signup", s.authEndpoints.SignupHandler)
				r.Post("/refresh", s.authEndpoints.RefreshHandler)
				r.Post("/logout", s.authEndpoints.LogoutHandler)

				// Protected auth routes (with middleware)
				r.Group(func(r chi.Router) {
					r.Use(s.authService.Middleware)
					r.Get("/me", s.authEndpoints.MeHandler)
				})
			})
		}

		// Domain routes (protected)
		if s.gormDB != nil {
			r.Group(func(r chi.Router) {
				if s.authService != nil {
					r.Use(s.authService.Middleware)
				}
				s.clientEndpoints.RegisterRoutes(r)
				s.assessmentEndpoints.RegisterRoutes(r)
				s.projectEndpoints.RegisterRoutes(r)
				s.consultantEndpoints.RegisterRoutes(r)
				s.catalogEndpoints.RegisterRoutes(r)
			})
		}
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() {
	port := s.config.Server.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.SetupRoutes(),
	}

	// Graceful shutdown
	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	if s.pool != nil {
		s.pool.Close()
	}

	slog.Info("Server exited")
}

// CheckOrigin validates the origin of WebSocket connections to prevent CSRF attacks
func CheckOrigin(r *http.Request, allowedOriginsStr string) bool {
	origin := r.Header.Get("Origin")

	// If no allowed origins are configured, deny all requests for security
	if allowedOriginsStr == "" {
		slog.Warn("WebSocket connection rejected: no allowed origins configured", "origin", origin)
		return false
	}

	allowedOrigins := strings.Split(allowedOriginsStr, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	for _, allowed := range allowedOrigins {
		if allowed == origin {
			return true
		}
	}

	slog.Warn("WebSocket connection rejected: origin not allowed", "origin", origin, "allowed_origins", allowedOriginsStr)
	return false
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	dbStatus := "not configured"

	if s.pool != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.pool.Ping(ctx); err != nil {
			dbStatus = "down"
			status = "degraded"
		} else {
			dbStatus = "up"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"` + status + `","database":"` + dbStatus + `"}`))
}

func (s *Server) apiV1Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"API v1","version":"1.0.0"}`))
}

func (s *Server) websocketHandlerFunc(w http.ResponseWriter, r *http.Request) {
	userID := "anonymous"
	if user, ok := r.Context().Value("user").(*models.User); ok {
		userID = user.ID
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	slog.Info("WebSocket connection established", "user_id", userID)

	client := s.wsHub.RegisterClient(conn, userID)
	go client.WritePump()
	client.ReadPump()
}
