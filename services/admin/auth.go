// File: services/admin/auth.go
package admin

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	adminRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

const (
	// AuthCachePrefix keys the token hash of a signed-in admin.
	AuthCachePrefix = "adminAuth:"
	tokenTTL        = 24 * time.Hour
)

// Authenticate verifies the credentials and returns a signed JWT. The
// token's hash is stored in the auth cache; middleware requires it to be
// present, so revocation is a cache delete.
func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenTTL)
	if err != nil {
		return "", err
	}

	key := AuthCachePrefix + account.ID
	if err := s.AuthCache.Set(ctx, key, utils.HashToken(token), tokenTTL).Err(); err != nil {
		return "", err
	}

	s.logger().Info("admin signed in", zap.String("adminId", account.ID))
	return token, nil
}

// Revoke invalidates the admin's current token.
func (s *DefaultAuthService) Revoke(ctx context.Context, adminID string) error {
	if err := s.AuthCache.Del(ctx, AuthCachePrefix+adminID).Err(); err != nil {
		return err
	}
	s.logger().Info("admin token revoked", zap.String("adminId", adminID))
	return nil
}

// HashPassword produces the bcrypt hash stored for an admin account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
