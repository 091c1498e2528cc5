package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wardrobe-api/pkg/helpers"
	"wardrobe-api/pkg/response"
)

// CtxUserIDKey is the Gin context key carrying the authenticated user id (int64).
const CtxUserIDKey = "userID"

// Auth validates the Authorization bearer token and injects the caller's user
// id into the Gin context. Sessions are stateless: the token carries identity
// and expiry, nothing is looked up server-side.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	const prefix = "Bearer "
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, prefix) {
			response.Error(c, http.StatusUnauthorized, "No token provided, authorization denied")
			return
		}
		claims, err := jwt.Parse(strings.TrimPrefix(header, prefix))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
