package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/existflow/ticketr/internal/auth"
	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/storage"
	"github.com/existflow/ticketr/internal/tickets"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the local HTTP host for the session and ticket stores
type Server struct {
	storage  storage.Storage
	sessions *auth.SessionStore
	tickets  *tickets.Store
	echo     *echo.Echo
}

// New creates a server over an open storage backend
func New(store storage.Storage, clk clock.Clock) *Server {
	s := &Server{
		storage:  store,
		sessions: auth.NewSessionStore(store, clk),
		tickets:  tickets.NewStore(store, clk),
	}

	s.setupEcho()

	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)

			logger.Debug("HTTP Request",
				logger.F("request_id", reqID),
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("remote", req.RemoteAddr))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			logger.Info("HTTP Response",
				logger.F("request_id", reqID),
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("size", res.Size),
				logger.F("duration", time.Since(start).String()))

			return nil
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	// API v1
	api := e.Group("/api/v1")

	// Auth endpoints (public)
	api.POST("/login", s.handleLogin)
	api.POST("/signup", s.handleSignup)
	api.POST("/logout", s.handleLogout)

	// Protected endpoints
	protected := api.Group("")
	protected.Use(s.requireSession)
	protected.GET("/me", s.handleMe)
	protected.GET("/stats", s.handleStats)
	protected.GET("/tickets", s.handleListTickets)
	protected.POST("/tickets", s.handleCreateTicket)
	protected.GET("/tickets/:id", s.handleGetTicket)
	protected.PUT("/tickets/:id", s.handleUpdateTicket)
	protected.DELETE("/tickets/:id", s.handleDeleteTicket)

	s.echo = e
}

// Close closes the storage backend
func (s *Server) Close() error {
	return s.storage.Close()
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// respondError maps store errors onto HTTP statuses
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		logger.Error("Request failed",
			logger.F("uri", c.Request().RequestURI),
			logger.F("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
