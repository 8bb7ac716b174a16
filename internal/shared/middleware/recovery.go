package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into the 500 error page.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				if !c.Writer.Written() {
					c.HTML(http.StatusInternalServerError, "error", gin.H{
						"title":   "Error",
						"message": "An unexpected error occurred",
						"status":  http.StatusInternalServerError,
					})
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
