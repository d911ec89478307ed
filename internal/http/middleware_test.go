package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/paperread/internal/entities"
)

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		query    string
		expected entities.UserID
	}{
		{"header wins", "alice", "?username=bob", "alice"},
		{"query parameter", "", "?username=bob", "bob"},
		{"blank header falls through", "   ", "?username=bob", "bob"},
		{"client address", "", "", "192.0.2.1"},
		{"long names are truncated", strings.Repeat("x", 80), "", entities.UserID(strings.Repeat("x", 50))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(IdentityMiddleware())

			var got entities.UserID
			router.GET("/whoami", func(c *gin.Context) {
				got = GetUserID(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest("GET", "/whoami"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(UsernameHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetUserID_WithoutMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?username=carol", nil)

	assert.Equal(t, entities.UserID("carol"), GetUserID(c))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
