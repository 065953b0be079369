// server/internal/api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/auth"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticate validates the bearer token and stores the caller's identity
// and claims in the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims := &auth.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return auth.JwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("user_email", claims.Email)
		c.Set("user_role", string(claims.Role))
		c.Set("user_approved", claims.Approved)

		c.Next()
	}
}

// Authorize is a middleware factory checking the caller's role against an
// allow list. Authenticate must run first.
func Authorize(allowedRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleValue, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User role not found in context"})
			return
		}

		userRole, ok := userRoleValue.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User role has an invalid type"})
			return
		}

		for _, role := range allowedRoles {
			if string(role) == userRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}

// RequireWrite gates mutating routes: the caller must be approved and hold
// a writing role (staff, researcher or admin). Executives and external
// viewers are read-only even when approved.
func RequireWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		approved, _ := c.Get("user_approved")
		roleValue, _ := c.Get("user_role")
		role, _ := roleValue.(string)

		canWrite := approved == true &&
			(role == string(models.RoleStaff) || role == string(models.RoleResearcher) || role == string(models.RoleAdmin))

		if !canWrite {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Write access requires an approved staff, researcher or admin account"})
			return
		}
		c.Next()
	}
}
