package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"taleweaver/pkg/inference"
	"taleweaver/pkg/schema"
	"taleweaver/pkg/utils"
)

type Server struct {
	Echo       *echo.Echo
	Inferencer inference.Inferencer
	// Ctx bounds every outbound model call; cancelling it abandons the
	// calls still in flight.
	Ctx context.Context
}

func NewServer(ctx context.Context, inf inference.Inferencer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Echo:       e,
		Inferencer: inf,
		Ctx:        ctx,
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)
	s.Echo.GET("/metrics", metricsHandler())

	api := s.Echo.Group("/api")
	api.GET("/schema", s.handleGetSchema)
	api.POST("/rewrite", s.handlePostRewrite)       // continue the story from a selected passage
	api.POST("/generate", s.handlePostGenerate)     // alternate universe from a book description
	api.POST("/suggest-quote", s.handlePostSuggest) // annotation quotes for a highlight
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}

// infer sends a prompt to the model. The call ends when either the request or
// the server context is done, so a client disconnect or a shutdown abandons
// it; no timeout is applied.
func (s *Server) infer(c echo.Context, op string, prompt string) (string, error) {
	id := requestID(c)
	if log.GetLevel() <= log.DebugLevel {
		if tokens, err := utils.NumTokensFromMessages(prompt); err == nil {
			log.Debug("sending prompt", "op", op, "id", id, "chars", len(prompt), "tokens", tokens)
		} else {
			log.Debug("sending prompt", "op", op, "id", id, "chars", len(prompt))
		}
	}

	ctx, cancel := context.WithCancel(s.Ctx)
	defer cancel()
	stop := context.AfterFunc(c.Request().Context(), cancel)
	defer stop()

	start := time.Now()
	out, err := s.Inferencer.Infer(ctx, prompt)
	if err != nil {
		observeGeneration(op, start, "error")
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		observeGeneration(op, start, "empty")
		return "", inference.ErrEmptyResult
	}
	observeGeneration(op, start, "success")

	log.Info("generation complete", "op", op, "id", id, "chars", len(out))
	return out, nil
}

// rejectInvalid answers a failed validation with 400 and the generic
// message; the missing field names only go to the log.
func rejectInvalid(c echo.Context, err error) error {
	validationFailures.WithLabelValues(c.Path()).Inc()
	var vErr *schema.ValidationError
	if errors.As(err, &vErr) {
		log.Warn("missing required fields", "path", c.Path(), "id", requestID(c), "fields", vErr.Missing)
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(vErr.Message))
	}
	return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
}

// handleError renders echo's own errors (unknown route, bad method, panics)
// in the same shape as the handlers do.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		log.Error("unhandled error", "path", c.Path(), "id", requestID(c), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, utils.ErrJSON(msg))
	}
	if err != nil {
		log.Warn("failed writing error response", "error", err)
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
