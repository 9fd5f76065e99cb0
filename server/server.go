// Package server exposes outro generation over HTTP.
//
// Routes:
//
//	GET  /outro?title=...       markdown outro
//	GET  /outro.json?title=...  outro.Result as JSON
//	POST /outro                 outro.Result as JSON, body {"title": "..."}
//	GET  /slug?title=...        {"title": "...", "slug": "..."}
//	GET  /healthz               ok
//	GET  /metrics               Prometheus metrics, when enabled
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/presbrey/outro/config"
	"github.com/presbrey/outro/outro"
	"github.com/presbrey/outro/slugs"
)

// MarkdownContentType is the content type of the markdown outro.
const MarkdownContentType = "text/markdown; charset=utf-8"

// Mount captures the routing methods shared by echo.Echo and echo.Group,
// so the routes can be registered on either.
type Mount interface {
	Use(middleware ...echo.MiddlewareFunc)
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	Group(prefix string, m ...echo.MiddlewareFunc) *echo.Group
}

var (
	_ Mount = (*echo.Echo)(nil)
	_ Mount = (*echo.Group)(nil)
)

// TitleRequest carries the title of a post.
type TitleRequest struct {
	Title string `json:"title" query:"title" form:"title" validate:"required"`
}

// SlugResponse is the body of GET /slug.
type SlugResponse struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Server is the outro HTTP service.
type Server struct {
	Echo    *echo.Echo
	Metrics *Metrics

	config *config.Config
}

// New builds a Server from cfg. A nil cfg uses config.Default().
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	s := &Server{
		Echo:    e,
		Metrics: NewMetrics(),
		config:  cfg,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.Log.Requests {
		e.Use(middleware.Logger())
	}
	if cfg.Metrics.Enabled {
		metricsPath := cfg.Metrics.Path
		e.Use(s.Metrics.Middleware(func(c echo.Context) bool {
			return c.Path() == metricsPath
		}))
		e.GET(metricsPath, s.Metrics.Handler())
	}

	s.Register(e)
	return s
}

// Register mounts the outro routes on m.
func (s *Server) Register(m Mount) {
	m.GET("/healthz", s.healthz)
	m.GET("/outro", s.markdown)
	m.GET("/outro.json", s.result)
	m.POST("/outro", s.result)
	m.GET("/slug", s.slug)
}

// Start listens on the configured address and blocks until the server stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	addr := s.config.ListenAddress()
	log.Printf("outro server listening on %s", addr)
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

func (s *Server) healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) markdown(c echo.Context) error {
	req, err := bindTitle(c)
	if err != nil {
		return err
	}
	s.Metrics.GeneratedTotal.WithLabelValues("markdown").Inc()
	return c.Blob(http.StatusOK, MarkdownContentType, []byte(outro.Generate(req.Title)))
}

func (s *Server) result(c echo.Context) error {
	req, err := bindTitle(c)
	if err != nil {
		return err
	}
	s.Metrics.GeneratedTotal.WithLabelValues("json").Inc()
	return c.JSON(http.StatusOK, outro.Build(req.Title))
}

func (s *Server) slug(c echo.Context) error {
	req, err := bindTitle(c)
	if err != nil {
		return err
	}
	s.Metrics.GeneratedTotal.WithLabelValues("slug").Inc()
	return c.JSON(http.StatusOK, SlugResponse{
		Title: req.Title,
		Slug:  slugs.Slugify(req.Title),
	})
}

// bindTitle binds and validates the title. A title of only whitespace counts
// as missing; any other title is passed through untrimmed.
func bindTitle(c echo.Context) (*TitleRequest, error) {
	req := new(TitleRequest)
	if err := c.Bind(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		req.Title = ""
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
