package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"peyvand/internal/config"
	"peyvand/internal/core/auth"
	"peyvand/internal/core/policy"
	tokenPort "peyvand/internal/ports/token"
)

// JWTAuthMiddleware حل کردن principal از روی هدر Authorization.
// توکن باید access و غیر باطل‌شده باشد.
func JWTAuthMiddleware(blacklist tokenPort.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		claims, err := auth.Parse(strings.TrimPrefix(header, "Bearer "), config.JWTSecret())
		if err != nil || claims.Kind != auth.KindAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), claims.Id)
			if err == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
		}

		c.Set("userID", claims.Subject)
		c.Set("isStaff", claims.Staff)
		c.Next()
	}
}

// CurrentPrincipal خواندن principal از context؛ بدون middleware ناشناس است
func CurrentPrincipal(c *gin.Context) policy.Principal {
	id, exists := c.Get("userID")
	if !exists {
		return policy.Anonymous
	}
	staff, _ := c.Get("isStaff")
	isStaff, _ := staff.(bool)
	return policy.Principal{
		ID:      uuid.FromStringOrNil(id.(string)),
		IsStaff: isStaff,
	}
}
