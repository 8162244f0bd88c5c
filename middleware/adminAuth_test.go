package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/config"
	adminSvc "github.com/clicksalesmedia/clicksalesmedia-sub003/services/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

type fakeTokenCache struct {
	values map[string]string
}

func (f *fakeTokenCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeTokenCache) Get(_ context.Context, key string) *redis.StringCmd {
	if v, ok := f.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeTokenCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func newAdminAuthRouter(cache adminSvc.TokenCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/ping", JWTAuthAdminMiddleware(cache), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminId": c.GetString("adminID")})
	})
	return r
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	cache := &fakeTokenCache{values: map[string]string{}}
	router := newAdminAuthRouter(cache)

	token, err := utils.GenerateToken("adm-1", "ops@clicksalesmedia.test", time.Hour)
	require.NoError(t, err)
	cache.values[adminSvc.AuthCachePrefix+"adm-1"] = utils.HashToken(token)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "adm-1")
	})

	t.Run("revoked before expiry", func(t *testing.T) {
		cache.Del(context.Background(), adminSvc.AuthCachePrefix+"adm-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale hash after re-login elsewhere", func(t *testing.T) {
		cache.values[adminSvc.AuthCachePrefix+"adm-1"] = utils.HashToken("a different token")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
