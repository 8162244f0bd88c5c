package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adminSvc "github.com/clicksalesmedia/clicksalesmedia-sub003/services/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

// JWTAuthAdminMiddleware guards the /api/admin routes. The token must be
// a valid HS256 JWT and its hash must still be present in the auth cache;
// a revoked token fails even before expiry.
func JWTAuthAdminMiddleware(authCache adminSvc.TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		cachedHash, err := authCache.Get(context.Background(), adminSvc.AuthCachePrefix+adminID).Result()
		if err != nil || cachedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
