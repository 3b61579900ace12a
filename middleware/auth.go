package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"online-shop/models"
	"online-shop/services"
)

// AuthMiddleware resolves the bearer token to a user identity. Validation
// fails closed: any malformed, forged, or expired token is rejected.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := tokens.ParseClaims(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_email", claims.Subject)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware gates admin routes on the role claim.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
