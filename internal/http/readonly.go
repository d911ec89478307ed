package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyReadOnly is set on every request so handlers can report the mode.
const ContextKeyReadOnly = "library_read_only"

// ReadOnlyGuard blocks write operations on the shared article library.
// Safe methods always pass. Routes guarded by it are the ones that change
// article content, so per-reader state (history, annotations, favourites)
// stays writable when the library is locked.
type ReadOnlyGuard struct {
	enabled bool
}

func NewReadOnlyGuard(enabled bool) *ReadOnlyGuard {
	return &ReadOnlyGuard{enabled: enabled}
}

// IsEnabled returns whether the library is locked.
func (g *ReadOnlyGuard) IsEnabled() bool {
	return g.enabled
}

// Handler returns a Gin middleware rejecting unsafe methods with 403.
func (g *ReadOnlyGuard) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyReadOnly, g.enabled)
		if !g.enabled || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		respondError(c, http.StatusForbidden, "the article library is read-only")
		c.Abort()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
