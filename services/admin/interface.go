// File: services/admin/interface.go
package admin

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	adminRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/admin"
)

// ErrInvalidCredentials covers both unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService issues and revokes admin dashboard tokens.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Revoke(ctx context.Context, adminID string) error
}

// TokenCache is the slice of the Redis client the auth service uses for
// session token hashes. *redis.Client satisfies it.
type TokenCache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultAuthService authenticates against the Postgres admin table and
// caches token hashes in Redis so revocation takes effect immediately.
type DefaultAuthService struct {
	Repo      adminRepo.AdminRepository
	AuthCache TokenCache
	Logger    *zap.Logger
}

func (s *DefaultAuthService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
