package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/katalvlaran/taut/hull"
	"github.com/katalvlaran/taut/route"
	"github.com/katalvlaran/taut/sequence"
	"github.com/katalvlaran/taut/tangency"
)

// Version is reported by /health and /info.
const Version = "1.0.0"

// Server is the HTTP shell around the path solvers.
type Server struct {
	echo *echo.Echo
}

// New builds a server with all routes registered.
func New() *Server {
	var (
		e *echo.Echo
		s *Server
	)

	e = echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s = &Server{echo: e}

	e.GET("/health", s.health)
	e.GET("/info", s.info)
	e.GET("/api/dubins/info", s.dubinsInfo)
	e.POST("/api/dubins/compute", s.dubinsCompute)
	e.POST("/api/envelope/solve", s.envelopeSolve)
	e.POST("/api/envelope/route", s.envelopeRoute)
	e.POST("/api/envelope/hull", s.envelopeHull)

	return s
}

// Start serves on addr until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// statusFor maps solver sentinels onto HTTP statuses: malformed scenes are
// 400, well-formed but unprocessable ones are 422, the rest is 500.
// Geometric non-existence never reaches here; handlers encode it in the
// payload as valid=false.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tangency.ErrNoDisks),
		errors.Is(err, tangency.ErrDuplicateDiskID),
		errors.Is(err, tangency.ErrNonPositiveRadius),
		errors.Is(err, sequence.ErrShortSequence),
		errors.Is(err, route.ErrTooFewAnchors),
		errors.Is(err, hull.ErrNoDisks):
		return http.StatusBadRequest
	case errors.Is(err, sequence.ErrUnknownDisk),
		errors.Is(err, sequence.ErrRepeatedDisk),
		errors.Is(err, sequence.ErrChiralityCount),
		errors.Is(err, route.ErrAnchorInsideDisk),
		errors.Is(err, hull.ErrDegenerate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// msSince reports elapsed wall time in milliseconds.
func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
