// Package site serves the resume page over HTTP with gin.
//
// Every GET path renders the same page shell; the only other endpoints are the
// HTMX fragments for the contact form and the mobile menu.
package site

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lisawang/lisa-site/internal/content"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const shutdownTimeout = 5 * time.Second

// Server renders the page shell and its fragments.
type Server struct {
	engine   *gin.Engine
	tmpl     *template.Template
	registry *content.Registry
	log      *zap.Logger
}

// New builds the gin engine with all routes. gin's mode is left to the caller.
func New(registry *content.Registry, log *zap.Logger) (*Server, error) {
	if registry == nil {
		return nil, errors.New("site: nil content registry")
	}
	if log == nil {
		log = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	s := &Server{
		tmpl:     tmpl,
		registry: registry,
		log:      log,
	}

	r := gin.New()
	// Every path renders the shell, including ones with a trailing slash.
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery())
	r.Use(requestLogger(log, salt))
	r.SetHTMLTemplate(tmpl)

	// Assets are registered one by one so /static/ itself has no listing
	assets, err := fs.ReadDir(static, ".")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	for _, a := range assets {
		if !a.IsDir() {
			r.StaticFileFS("/static/"+a.Name(), a.Name(), http.FS(static))
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Contact form fallback for clients without scripts (HTMX clients get HX-Redirect)
	r.POST("/contact", s.handleContact)

	// HTMX mobile menu toggle - returns the menu fragment in its new state
	r.GET("/nav/menu", s.handleMenu)

	// Home page, and every other path: the router is fragment- and path-agnostic
	r.GET("/", s.handleShell)
	r.HEAD("/", s.handleShell)
	r.NoRoute(s.handleShell)

	s.engine = r
	return s, nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
