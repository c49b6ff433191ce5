package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tsblog-backend/internal/shared/authz"
	"tsblog-backend/internal/shared/response"
	"tsblog-backend/pkg/jwt"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextClaims   = "claims"
)

// Auth verifies the bearer token and stores the caller's claim set on
// the context. Unauthenticated callers are rejected with 401 before
// any policy evaluation happens.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextClaims, authz.Claims{
			Authenticated: true,
			Values: map[string][]string{
				authz.ClaimScope: {claims.Scope},
				"name":           {claims.Username},
				"email":          {claims.Email},
			},
		})

		c.Next()
	}
}

// RequirePolicy evaluates the named policy against the caller's claim
// set. Must run after Auth; a missing claim set means the caller never
// authenticated and is rejected outright.
func RequirePolicy(policyName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextClaims)
		if !exists {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, ok := claimsValue.(authz.Claims)
		if !ok || !authz.Evaluate(policyName, claims) {
			response.Forbidden(c, "caller does not satisfy the "+policyName+" policy")
			c.Abort()
			return
		}

		c.Next()
	}
}
