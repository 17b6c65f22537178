package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "foodgram/internal/pkg/jwt"
)

// RequireAuth rejects requests without a valid bearer token and sets
// user_id in the context.
func RequireAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing or invalid credentials",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets user_id when a valid token is present and lets the
// request through either way. Read endpoints use it to compute
// is_favorited / is_in_shopping_cart flags for the caller; anonymous
// callers keep user_id 0 and always see both flags false.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, jwt); ok {
			c.Set("user_id", claims.UserID)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// UserID returns the authenticated user's id, 0 for anonymous.
func UserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
