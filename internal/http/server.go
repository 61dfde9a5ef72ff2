// Package http provides the HTTP API for routefsm's serve mode.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/routefsm/internal/routes"
	"github.com/fyrsmithlabs/routefsm/pkg/textfsm"
)

// Server exposes route parsing and summarization over HTTP.
type Server struct {
	echo    *echo.Echo
	tmpl    *textfsm.Template
	logger  *zap.Logger
	metrics *Metrics
	config  *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates a new HTTP server around a compiled default template.
func NewServer(tmpl *textfsm.Template, logger *zap.Logger, cfg *Config) (*Server, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8080,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics := NewMetrics(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:    e,
		tmpl:    tmpl,
		logger:  logger,
		metrics: metrics,
		config:  cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/parse", s.handleParse)
	v1.POST("/summary", s.handleSummary)
}

// ParseRequest is the request body for POST /api/v1/parse and /summary.
type ParseRequest struct {
	// Content is the raw "show ip route" output.
	Content string `json:"content"`
	// Template optionally replaces the server's default grammar for this
	// request only.
	Template string `json:"template,omitempty"`
}

// ParseResponse is the response body for POST /api/v1/parse.
type ParseResponse struct {
	RunID  string         `json:"run_id"`
	Count  int            `json:"count"`
	Routes []routes.Route `json:"routes"`
}

// SummaryResponse is the response body for POST /api/v1/summary.
type SummaryResponse struct {
	RunID       string         `json:"run_id"`
	UniqueCount int            `json:"unique_count"`
	ByProtocol  map[string]int `json:"by_protocol"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleParse extracts route entries from the posted content.
func (s *Server) handleParse(c echo.Context) error {
	parsed, runID, err := s.parse(c)
	if err != nil {
		return err
	}

	s.metrics.ObserveRecords(len(parsed))
	s.logger.Debug("parsed content",
		zap.String("run_id", runID),
		zap.Int("routes", len(parsed)),
	)

	return c.JSON(http.StatusOK, ParseResponse{
		RunID:  runID,
		Count:  len(parsed),
		Routes: parsed,
	})
}

// handleSummary extracts and deduplicates routes, returning per-protocol
// counts over the distinct (protocol, network, mask) keys.
func (s *Server) handleSummary(c echo.Context) error {
	parsed, runID, err := s.parse(c)
	if err != nil {
		return err
	}
	summary := routes.Summarize(parsed)

	s.metrics.ObserveRecords(len(parsed))
	s.logger.Debug("summarized content",
		zap.String("run_id", runID),
		zap.Int("routes", len(parsed)),
		zap.Int("unique", summary.Unique),
	)

	return c.JSON(http.StatusOK, SummaryResponse{
		RunID:       runID,
		UniqueCount: summary.Unique,
		ByProtocol:  summary.ByProtocol,
	})
}

// parse binds the request and runs the extraction with either the server's
// default template or a request-scoped one.
func (s *Server) parse(c echo.Context) ([]routes.Route, string, error) {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid parse request", zap.Error(err))
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "content field is required")
	}

	tmpl := s.tmpl
	if req.Template != "" {
		var err error
		tmpl, err = textfsm.Compile(req.Template)
		if err != nil {
			return nil, "", echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
	}

	runID := uuid.NewString()
	start := time.Now()
	parsed := routes.Parse(tmpl, req.Content)
	s.metrics.ObserveParse(time.Since(start))

	return parsed, runID, nil
}

// Start begins serving. Blocks until Shutdown or failure.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
