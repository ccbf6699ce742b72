package middleware

import (
	"net/http"
	"strings"

	"pos-kasir/models"
	"pos-kasir/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, checks the persisted session
// (which lazily expires) and counts the request as user activity for the
// idle timer.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
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

		claims, err := auth.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Code:    models.CodeSessionExpired,
			})
			c.Abort()
			return
		}

		user, err := auth.CurrentUser()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to read session",
				Code:    models.CodeNetworkError,
			})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Session expired, please log in again",
				Code:    models.CodeSessionExpired,
			})
			c.Abort()
			return
		}

		auth.TouchActivity()

		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}
