package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/paperread/internal/entities"
)

const (
	// ContextKeyUserID holds the entities.UserID of the current reader.
	ContextKeyUserID = "reader_user_id"

	// UsernameHeader carries the reader name chosen in the client.
	UsernameHeader = "X-Username"

	maxUserIDLength = 50
)

// IdentityMiddleware resolves who is reading. The X-Username header wins,
// then the username query parameter, then the client address. There is no
// authentication: the name only partitions per-reader state.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyUserID, resolveUserID(c))
		c.Next()
	}
}

func resolveUserID(c *gin.Context) entities.UserID {
	for _, candidate := range []string{c.GetHeader(UsernameHeader), c.Query("username")} {
		if name := strings.TrimSpace(candidate); name != "" {
			if len(name) > maxUserIDLength {
				name = name[:maxUserIDLength]
			}
			return entities.UserID(name)
		}
	}
	return entities.UserID(c.ClientIP())
}

// GetUserID returns the reader resolved by IdentityMiddleware. Handlers
// mounted without the middleware fall back to resolving it directly.
func GetUserID(c *gin.Context) entities.UserID {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(entities.UserID); ok {
			return userID
		}
	}
	return resolveUserID(c)
}

// SecurityHeadersMiddleware adds security headers suited to a JSON API.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Next()
	}
}
