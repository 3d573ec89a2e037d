// Package web provides the HTTP server and HTML interface for Blogly
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/beesaferoot/blogly/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// Server represents the web server
type Server struct {
	Store  *store.Store
	Router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new web server bound to the given store.
func NewServer(st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	useFormFieldNames()

	s := &Server{
		Store:  st,
		Router: router,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.Router.GET("/healthz", s.health)
	s.Router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	users := s.Router.Group("/users")
	{
		users.GET("", s.listUsers)
		users.GET("/new", s.newUserForm)
		users.POST("/new", s.createUser)
		users.GET("/:id", s.showUser)
		users.GET("/:id/edit", s.editUserForm)
		users.POST("/:id/edit", s.updateUser)
		users.POST("/:id/delete", s.deleteUser)
		users.GET("/:id/posts/new", s.newPostForm)
		users.POST("/:id/posts/new", s.createPost)
	}

	posts := s.Router.Group("/posts")
	{
		posts.GET("/:id", s.showPost)
		posts.GET("/:id/edit", s.editPostForm)
		posts.POST("/:id/edit", s.updatePost)
		posts.POST("/:id/delete", s.deletePost)
	}

	s.Router.NoRoute(s.notFound)
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(c *gin.Context) {
	if err := s.Store.Ping(c.Request.Context()); err != nil {
		s.logger.Warn("health check failed", "err", err)
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
