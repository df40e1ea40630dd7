package ui

import (
	"context"
	"net/http"
	"time"

	"studytrack/app"
	"studytrack/internal"

	"github.com/gin-gonic/gin"
)

// Server is the product API: session CRUD, the dashboard summary, the
// weekly history panel, the report download, and the AI advice panel.
type Server struct {
	router          *gin.Engine
	sessions        *SessionHandlers
	dashboard       *app.DashboardService
	history         *app.HistoryService
	recommendations *app.RecommendationService
	reports         *app.ReportService
	logger          *internal.Logger
}

// Config holds UI server configuration.
type Config struct {
	Port    string
	GinMode string
}

// NewServer wires the handlers onto a gin router.
func NewServer(cfg Config, sessions *SessionHandlers, dashboard *app.DashboardService, history *app.HistoryService, recommendations *app.RecommendationService, reports *app.ReportService, logger *internal.Logger) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		router:          gin.New(),
		sessions:        sessions,
		dashboard:       dashboard,
		history:         history,
		recommendations: recommendations,
		reports:         reports,
		logger:          logger,
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	api.Use(RequireUser())

	api.POST("/sessions", s.sessions.Create)
	api.GET("/sessions", s.sessions.List)
	api.GET("/sessions/:id", s.sessions.Get)
	api.PUT("/sessions/:id", s.sessions.Update)
	api.DELETE("/sessions/:id", s.sessions.Delete)

	api.GET("/dashboard", s.handleDashboard)
	api.GET("/history", s.handleHistory)
	api.GET("/report", s.handleReport)
	api.GET("/recommendations", s.handleRecommendations)

	// No user scoping needed for the numeric diagnostics panel.
	s.router.GET("/api/diagnostics/axioms", s.handleAxioms)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening on :%s", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
