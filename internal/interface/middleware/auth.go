package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogpost-api/pkg/helpers"
	"blogpost-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
	CtxEmailKey    = "userEmail"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func setIdentity(c *gin.Context, claims *helpers.Claims) {
	c.Set(CtxUserIDKey, claims.UserID)
	c.Set(CtxUsernameKey, claims.Username)
	c.Set(CtxEmailKey, claims.Email)
}

// RequireAuth validates the Authorization bearer token and injects the
// authenticated identity into the Gin context. Requests without a valid
// token are rejected with 401.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth injects the identity when a valid bearer token is present
// and otherwise lets the request through as an anonymous viewer. Invalid
// tokens are treated the same as absent ones; reads are never gated.
func OptionalAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := jwt.Parse(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// ViewerID returns the authenticated user id from the context, or nil for
// anonymous viewers.
func ViewerID(c *gin.Context) *int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
