package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/restkit/errors"
)

// newUserAPI serves a tiny users resource the way a real upstream would
func newUserAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := map[string]user{"1": {ID: 1, Name: "A"}}

	r := gin.New()
	r.GET("/users/:id", func(c *gin.Context) {
		u, ok := users[c.Param("id")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	})
	r.POST("/users", func(c *gin.Context) {
		var u user
		if err := c.ShouldBindJSON(&u); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, u)
	})
	r.DELETE("/users/:id", func(c *gin.Context) {
		if c.GetHeader("User-Agent") != DefaultUserAgent {
			c.JSON(http.StatusForbidden, gin.H{"error": "unknown client"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id"), "force": c.Query("force")})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestUserAPI(t *testing.T) {
	server := newUserAPI(t)
	d := New(server.URL)
	ctx := context.Background()

	t.Run("get existing user", func(t *testing.T) {
		got, err := Get[user](ctx, d, "users/1")
		require.NoError(t, err)
		assert.Equal(t, user{ID: 1, Name: "A"}, got)
	})

	t.Run("get missing user", func(t *testing.T) {
		got, err := Get[user](ctx, d, "users/2")
		require.Error(t, err)
		assert.EqualError(t, err, `404: {"error":"not found"}`)
		assert.True(t, errors.IsNotFound(err))
		assert.Zero(t, got)
	})

	t.Run("create user", func(t *testing.T) {
		got, err := Post[user](ctx, d, "users", user{ID: 2, Name: "B"})
		require.NoError(t, err)
		assert.Equal(t, user{ID: 2, Name: "B"}, got)
	})

	t.Run("create user without body", func(t *testing.T) {
		_, err := Post[user](ctx, d, "users", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClientError(err))
	})

	t.Run("delete user", func(t *testing.T) {
		got, err := Delete[map[string]string](ctx, d, "users/1", Query(map[string]string{"force": "true"}))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"deleted": "1", "force": "true"}, got)
	})

	t.Run("unknown route", func(t *testing.T) {
		// gin answers unmatched routes with a plain text body
		_, err := Put[user](ctx, d, "accounts/1", user{ID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsDecode(err))
	})
}
