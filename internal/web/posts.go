package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) newPostForm(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	user, err := s.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_new.html", pageData{Title: "Add post for " + user.FullName(), User: user})
}

func (s *Server) createPost(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	var form postForm
	fieldErrors, err := bindForm(c, &form)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if fieldErrors != nil {
		user, err := s.Store.GetUser(c.Request.Context(), userID)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.HTML(http.StatusBadRequest, "post_new.html", pageData{
			Title:    "Add post for " + user.FullName(),
			User:     user,
			PostForm: form,
			Errors:   fieldErrors,
		})
		return
	}

	if _, err := s.Store.CreatePost(c.Request.Context(), form.Title, form.Content, userID); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, userPath(userID))
}

func (s *Server) showPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	post, err := s.Store.GetPost(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.html", pageData{Title: post.Title, Post: post})
}

func (s *Server) editPostForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	post, err := s.Store.GetPost(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_edit.html", pageData{
		Title:    "Edit " + post.Title,
		Post:     post,
		PostForm: postForm{Title: post.Title, Content: post.Content},
	})
}

func (s *Server) updatePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	var form postForm
	fieldErrors, err := bindForm(c, &form)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if fieldErrors != nil {
		post, err := s.Store.GetPost(c.Request.Context(), id)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.HTML(http.StatusBadRequest, "post_edit.html", pageData{
			Title:    "Edit " + post.Title,
			Post:     post,
			PostForm: form,
			Errors:   fieldErrors,
		})
		return
	}

	if _, err := s.Store.UpdatePost(c.Request.Context(), id, form.Title, form.Content); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, postPath(id))
}

// deletePost looks the post up first to know where to send the browser.
func (s *Server) deletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	post, err := s.Store.GetPost(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.Store.DeletePost(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, userPath(post.UserID))
}

func postPath(id uint) string {
	return fmt.Sprintf("/posts/%d", id)
}
