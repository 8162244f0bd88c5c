// File: services/admin/auth_test.go
package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/config"
	adminRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

type fakeAdminRepo struct {
	accounts map[string]*models.Admin // keyed by email
}

func (f *fakeAdminRepo) Create(_ context.Context, account *models.Admin) error {
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	if account, ok := f.accounts[email]; ok {
		return account, nil
	}
	return nil, adminRepo.ErrNotFound
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*models.Admin, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, adminRepo.ErrNotFound
}

type fakeTokenCache struct {
	values map[string]string
	setErr error
}

func (f *fakeTokenCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = fmt.Sprint(value)
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

func newTestAuthService(t *testing.T) (*DefaultAuthService, *fakeTokenCache) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	repo := &fakeAdminRepo{accounts: map[string]*models.Admin{
		"ops@clicksalesmedia.test": {
			ID:           "adm-1",
			Email:        "ops@clicksalesmedia.test",
			PasswordHash: hash,
		},
	}}
	cache := &fakeTokenCache{values: map[string]string{}}
	svc := &DefaultAuthService{Repo: repo, AuthCache: cache, Logger: zap.NewNop()}
	return svc, cache
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, cache := newTestAuthService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@clicksalesmedia.test", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, cache.values)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, cache := newTestAuthService(t)

	_, err := svc.Authenticate(context.Background(), "ops@clicksalesmedia.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, cache.values)
}

func TestAuthenticateStoresTokenHash(t *testing.T) {
	svc, cache := newTestAuthService(t)

	token, err := svc.Authenticate(context.Background(), "ops@clicksalesmedia.test", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "adm-1", subject)

	// The middleware compares the cached hash against the presented token.
	assert.Equal(t, utils.HashToken(token), cache.values[AuthCachePrefix+"adm-1"])
}

func TestAuthenticateCacheWriteFailure(t *testing.T) {
	svc, cache := newTestAuthService(t)
	cache.setErr = fmt.Errorf("redis down")

	_, err := svc.Authenticate(context.Background(), "ops@clicksalesmedia.test", "s3cret-pass")
	assert.Error(t, err)
	assert.Empty(t, cache.values)
}

func TestRevokeDeletesTokenHash(t *testing.T) {
	svc, cache := newTestAuthService(t)

	_, err := svc.Authenticate(context.Background(), "ops@clicksalesmedia.test", "s3cret-pass")
	require.NoError(t, err)
	require.Contains(t, cache.values, AuthCachePrefix+"adm-1")

	require.NoError(t, svc.Revoke(context.Background(), "adm-1"))
	assert.NotContains(t, cache.values, AuthCachePrefix+"adm-1")

	// A second revoke of the same session is a no-op, not an error.
	assert.NoError(t, svc.Revoke(context.Background(), "adm-1"))
}
