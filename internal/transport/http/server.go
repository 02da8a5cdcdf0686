package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/config"
	"github.com/fleshka4/saucerswap-normaliser/internal/service"
	"github.com/fleshka4/saucerswap-normaliser/internal/transport/http/dto"
)

// Server represents the HTTP transport layer.
type Server struct {
	svc service.Service
	e   *echo.Echo
	log *zap.Logger

	graceTimeout   time.Duration
	requestTimeout time.Duration
}

// NewServer creates a new HTTP server with registered routes.
func NewServer(svc service.Service, cfg *config.Config, log *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		svc: svc,
		e:   echo.New(),
		log: log,

		graceTimeout:   cfg.GraceTimeout,
		requestTimeout: cfg.RequestTimeout,
	}

	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Server.ReadHeaderTimeout = cfg.ReadHeaderTimeout
	s.e.HTTPErrorHandler = s.handleError

	s.e.Use(middleware.Recover())
	s.e.Use(s.logMiddleware)

	s.e.GET("/quote", s.handleQuote)
	s.e.GET("/swap", s.handleSwap)
	s.e.GET("/decimals", s.handleDecimals)
	s.e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server starting", zap.String("addr", addr))
		errCh <- s.e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "s.e.Start")
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.graceTimeout)
	defer cancel()
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "s.e.Shutdown")
	}
	s.log.Info("server stopped gracefully")
	return nil
}

// logMiddleware logs each HTTP request and the time taken to process it.
func (s *Server) logMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		s.log.Info("request",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		_ = c.JSON(dto.HTTPStatus(appErr.Code), dto.NewErrorResponse(appErr))
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		text := http.StatusText(he.Code)
		_ = c.JSON(he.Code, dto.ErrorResponse{
			Code:    strings.ToUpper(strings.ReplaceAll(text, " ", "_")),
			Message: text,
		})
		return
	}

	s.log.Error("request failed", zap.Error(err))
	_ = c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "internal error",
	})
}
