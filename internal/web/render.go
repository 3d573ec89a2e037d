package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beesaferoot/blogly/internal/models"
	"github.com/beesaferoot/blogly/internal/store"
)

// pageData is the data every template is executed with.
type pageData struct {
	Title    string
	Users    []models.User
	User     *models.User
	Post     *models.Post
	UserForm userForm
	PostForm postForm
	Errors   map[string]string
	Status   int
	Message  string
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", pageData{
		Title:   "Not found",
		Status:  http.StatusNotFound,
		Message: "The page you requested does not exist.",
	})
}

// fail renders the error page matching err.
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		s.notFound(c)
		return
	}

	s.logger.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"err", err,
	)
	c.HTML(http.StatusInternalServerError, "error.html", pageData{
		Title:   "Something went wrong",
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong on our side. Please try again.",
	})
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.logger.WarnContext(c.Request.Context(), "bad form submission", "path", c.Request.URL.Path, "err", err)
	c.HTML(http.StatusBadRequest, "error.html", pageData{
		Title:   "Bad request",
		Status:  http.StatusBadRequest,
		Message: "The submitted form could not be read.",
	})
}
