package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hppyapp/hppy-backend/pkg/helpers"
	"github.com/hppyapp/hppy-backend/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxPhoneKey  = "userPhone"
)

// Auth validates the Authorization bearer token and injects the caller's
// identity into the Gin context on success.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxPhoneKey, claims.Phone)
		c.Next()
	}
}

// UserID returns the authenticated caller's id, or 0 outside an Auth route.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
