package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = FromContext(c)
		c.String(http.StatusOK, "pong")
	})
	return r, &seen
}

func TestMiddlewareAssignsID(t *testing.T) {
	r, seen := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	id := w.Header().Get(Header)
	require.NotEmpty(t, id)
	assert.Len(t, id, 26) // ULID string length
	assert.Equal(t, id, *seen)
}

func TestMiddlewareKeepsCallerID(t *testing.T) {
	r, seen := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(Header, "caller-supplied")
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied", w.Header().Get(Header))
	assert.Equal(t, "caller-supplied", *seen)
}
