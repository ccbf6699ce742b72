package middleware

import (
	"log"
	"net/http"

	"pos-kasir/models"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware is the top-level catch-all: no panic may take the
// whole application down. The client gets a generic error and can retry.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Something went wrong, please try again",
			Code:    models.CodeUnknownError,
		})
	})
}
