package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.Store.ListUsers(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "users_list.html", pageData{Title: "Users", Users: users})
}

func (s *Server) newUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user_new.html", pageData{Title: "Create a user"})
}

func (s *Server) createUser(c *gin.Context) {
	var form userForm
	fieldErrors, err := bindForm(c, &form)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if fieldErrors != nil {
		c.HTML(http.StatusBadRequest, "user_new.html", pageData{
			Title:    "Create a user",
			UserForm: form,
			Errors:   fieldErrors,
		})
		return
	}

	if _, err := s.Store.CreateUser(c.Request.Context(), form.FirstName, form.LastName, form.ImageURL); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

func (s *Server) showUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	user, err := s.Store.GetUser(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "user_detail.html", pageData{Title: user.FullName(), User: user})
}

func (s *Server) editUserForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	user, err := s.Store.GetUser(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "user_edit.html", pageData{
		Title: "Edit " + user.FullName(),
		User:  user,
		UserForm: userForm{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			ImageURL:  user.ImageURL,
		},
	})
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	var form userForm
	fieldErrors, err := bindForm(c, &form)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if fieldErrors != nil {
		user, err := s.Store.GetUser(c.Request.Context(), id)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.HTML(http.StatusBadRequest, "user_edit.html", pageData{
			Title:    "Edit " + user.FullName(),
			User:     user,
			UserForm: form,
			Errors:   fieldErrors,
		})
		return
	}

	if _, err := s.Store.UpdateUser(c.Request.Context(), id, form.FirstName, form.LastName, form.ImageURL); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	if err := s.Store.DeleteUser(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

func userPath(id uint) string {
	return fmt.Sprintf("/users/%d", id)
}
