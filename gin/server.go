// Package gin implements the standalone pagetext HTTP server on top of gin.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request identifier in responses.
const RequestIDHeader = "X-Request-ID"

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// ServerConfig holds server configuration options.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns default server configuration.
// The write timeout leaves room for a full fetch timeout plus extraction.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8000",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Server serves extraction requests on GET / and liveness on GET /health.
type Server struct {
	config  ServerConfig
	service pagetext.Service
	logger  *slog.Logger
	engine  *gin.Engine
}

// NewServer creates a Server with all routes configured.
// If logger is nil, slog.Default() is used.
func NewServer(config ServerConfig, service pagetext.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:  config,
		service: service,
		logger:  logger,
		engine:  gin.New(),
	}

	s.engine.Use(s.requestID())
	s.engine.Use(s.requestLogger())
	s.engine.Use(gin.Recovery())
	s.engine.Use(cors())

	s.engine.GET("/", s.handleExtract)
	s.engine.GET("/health", s.handleHealth)

	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleExtract(c *gin.Context) {
	link := c.Query(pagetext.LinkParam)
	if link == "" {
		c.JSON(http.StatusBadRequest, pagetext.ErrorResponse{Error: pagetext.MissingLinkMessage})
		return
	}

	result, err := s.service.ExtractFromURL(c.Request.Context(), link)
	if err != nil {
		status := pagetext.StatusCode(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("error processing url",
				"request_id", c.GetString(RequestIDHeader),
				"url", link,
				"code", pagetext.ErrorCode(err),
				"err", err,
			)
		}
		c.JSON(status, pagetext.ErrorResponse{Error: pagetext.ResponseMessage(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, pagetext.HealthResponse{Status: "healthy"})
}

// requestID tags each request with a fresh identifier unless the client
// supplied one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.logger.Info("request",
			"request_id", c.GetString(RequestIDHeader),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"duration", time.Since(begin),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			for k, v := range pagetext.PreflightHeaders() {
				c.Header(k, v)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		for k, v := range pagetext.CORSHeaders() {
			c.Header(k, v)
		}
		c.Next()
	}
}
