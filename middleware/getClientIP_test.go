package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func resolveIP(t *testing.T, remoteAddr string, headers map[string]string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		got = getClientIP(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestGetClientIP(t *testing.T) {
	t.Run("direct connection", func(t *testing.T) {
		ip := resolveIP(t, "192.0.2.10:52114", nil)
		assert.Equal(t, "192.0.2.10", ip)
	})

	t.Run("behind proxy uses first forwarded hop", func(t *testing.T) {
		ip := resolveIP(t, "10.0.0.1:80", map[string]string{
			"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		})
		assert.Equal(t, "203.0.113.7", ip)
	})
}
