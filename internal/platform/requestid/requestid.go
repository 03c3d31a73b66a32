// Package requestid tags every request with a ULID so log lines from one
// request can be correlated.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const (
	Header     = "X-Request-ID"
	ContextKey = "request_id"
)

// Middleware reuses an incoming X-Request-ID if the caller sent one,
// otherwise assigns a fresh ULID. The id is echoed on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set(ContextKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// FromContext returns the id assigned by Middleware, or "" outside of it.
func FromContext(c *gin.Context) string {
	return c.GetString(ContextKey)
}
