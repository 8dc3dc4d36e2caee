package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullAPIFlow walks the whole surface the way a client would:
// register, log in, create content, toggle a like both ways.
func TestFullAPIFlow(t *testing.T) {
	_, app, _ := newTestServer(t)

	// Register
	req := jsonRequest(t, http.MethodPost, "/api/users/register", map[string]string{
		"name":     "casey",
		"email":    "casey@example.com",
		"password": "Password123",
		"phone":    "555-0100",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &registered)
	require.NotEmpty(t, registered.Token)
	userID := registered.User.ID

	// Login returns a fresh token
	req = jsonRequest(t, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "casey@example.com",
		"password": "Password123",
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loggedIn struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &loggedIn)
	token := loggedIn.Token
	require.NotEmpty(t, token)

	auth := func(r *http.Request) *http.Request {
		r.Header.Set("Authorization", "Bearer "+token)
		return r
	}

	// Create a category
	resp, err = app.Test(auth(jsonRequest(t, http.MethodPost, "/api/categories/", map[string]string{
		"name": "travel",
	})))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var category models.Category
	decodeBody(t, resp, &category)

	// Create a blog in it
	resp, err = app.Test(auth(jsonRequest(t, http.MethodPost, "/api/blogs/", map[string]any{
		"name":       "trip-report",
		"content":    "we went places",
		"categoryId": category.ID,
	})))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var blog models.Blog
	decodeBody(t, resp, &blog)
	assert.Equal(t, userID, blog.UserID)

	// Toggle the like on
	resp, err = app.Test(auth(jsonRequest(t, http.MethodPost, "/api/users/1/liked-blogs", map[string]uint{
		"blogId": blog.ID,
	})))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var toggled struct {
		Action     string `json:"action"`
		LikedBlogs []uint `json:"liked_blogs"`
	}
	decodeBody(t, resp, &toggled)
	assert.Equal(t, "added", toggled.Action)
	assert.Equal(t, []uint{blog.ID}, toggled.LikedBlogs)

	// The like shows up from both directions
	resp, err = app.Test(auth(httptest.NewRequest(http.MethodGet, "/api/users/1/liked-blogs", nil)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var liked []models.Blog
	decodeBody(t, resp, &liked)
	require.Len(t, liked, 1)
	assert.Equal(t, blog.ID, liked[0].ID)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Blog
	decodeBody(t, resp, &fetched)
	require.Len(t, fetched.Likes, 1)
	assert.Equal(t, userID, fetched.Likes[0].ID)

	// Toggle the like back off
	resp, err = app.Test(auth(jsonRequest(t, http.MethodPost, "/api/users/1/liked-blogs", map[string]uint{
		"blogId": blog.ID,
	})))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &toggled)
	assert.Equal(t, "removed", toggled.Action)
	assert.Empty(t, toggled.LikedBlogs)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// Likes is marshaled with omitempty, so an empty set is absent from the
	// response; reset the reused struct so the previous fetch can't leak in.
	fetched = models.Blog{}
	decodeBody(t, resp, &fetched)
	assert.Empty(t, fetched.Likes)
}
