package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/blogly/internal/models"
)

func TestListUsers(t *testing.T) {
	srv, st := newTestServer(t)
	seedUser(t, st, "test1_first", "test1_last")
	seedUser(t, st, "test2_first", "test2_last")

	w := doGet(srv.Router, "/users")
	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "test1_first")
	assert.Contains(t, html, "test1_last")
	assert.Contains(t, html, "test2_first")
	assert.Contains(t, html, "<button>Add user</button>")
}

func TestShowAddUserForm(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doGet(srv.Router, "/users/new")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Create a user</h1>")
}

func TestAddUser(t *testing.T) {
	srv, st := newTestServer(t)

	w := doPost(srv.Router, "/users/new", url.Values{
		"first_name": {"Jeff"},
		"last_name":  {"Doe"},
		"image_url":  {""},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	w = doGet(srv.Router, "/users")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jeff")
	assert.Contains(t, w.Body.String(), "Doe")

	users, err := st.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.DefaultImageURL, users[0].ImageURL)
}

func TestAddUser_MissingField(t *testing.T) {
	srv, st := newTestServer(t)

	w := doPost(srv.Router, "/users/new", url.Values{"last_name": {"Doe"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "first_name is required")
	assert.NotContains(t, html, "last_name is required")
	assert.Contains(t, html, `value="Doe"`)

	users, err := st.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestShowUser(t *testing.T) {
	srv, st := newTestServer(t)
	user := seedUser(t, st, "test1_first", "test1_last")

	w := doGet(srv.Router, fmt.Sprintf("/users/%d", user.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<p>test1_first")
	assert.Contains(t, w.Body.String(), models.DefaultImageURL)
}

func TestShowUser_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/users/999", "/users/abc", "/users/999/edit", "/users/0"} {
		w := doGet(srv.Router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestEditUser(t *testing.T) {
	srv, st := newTestServer(t)
	user := seedUser(t, st, "test1_first", "test1_last")
	path := fmt.Sprintf("/users/%d/edit", user.ID)

	w := doGet(srv.Router, path)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="test1_first"`)

	w = doPost(srv.Router, path, url.Values{
		"first_name": {"edited_first"},
		"last_name":  {"edited_last"},
		"image_url":  {"https://example.com/me.png"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	w = doGet(srv.Router, fmt.Sprintf("/users/%d", user.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "edited_first")
	assert.NotContains(t, w.Body.String(), "test1_first")
	assert.Contains(t, w.Body.String(), "https://example.com/me.png")
}

func TestEditUser_Errors(t *testing.T) {
	srv, st := newTestServer(t)
	user := seedUser(t, st, "test1_first", "test1_last")

	w := doPost(srv.Router, fmt.Sprintf("/users/%d/edit", user.ID), url.Values{"first_name": {"only"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "last_name is required")

	got, err := st.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "test1_first", got.FirstName)

	w = doPost(srv.Router, "/users/999/edit", url.Values{"first_name": {"a"}, "last_name": {"b"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	srv, st := newTestServer(t)
	user := seedUser(t, st, "test1_first", "test1_last")
	other := seedUser(t, st, "test2_first", "test2_last")
	post, err := st.CreatePost(context.Background(), "Doomed", "gone soon", user.ID)
	require.NoError(t, err)

	w := doPost(srv.Router, fmt.Sprintf("/users/%d/delete", user.ID), nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	w = doGet(srv.Router, "/users")
	assert.NotContains(t, w.Body.String(), "test1_first")
	assert.Contains(t, w.Body.String(), other.FirstName)

	assert.Equal(t, http.StatusNotFound, doGet(srv.Router, fmt.Sprintf("/users/%d", user.ID)).Code)
	assert.Equal(t, http.StatusNotFound, doGet(srv.Router, fmt.Sprintf("/posts/%d", post.ID)).Code)

	posts, err := st.ListPostsForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)

	w = doPost(srv.Router, fmt.Sprintf("/users/%d/delete", user.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
