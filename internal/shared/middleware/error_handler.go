package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/apperr"
)

// ErrorHandler renders the "error" page for the last error a handler attached
// with c.Error. Unknown errors become 500 and their cause is only logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		appErr := apperr.Resolve(last.Err)

		if appErr.HTTPStatus >= 500 {
			log.Error().
				Err(last.Err).
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Str("code", appErr.Code).
				Msg("Request failed")
		} else {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Str("code", appErr.Code).
				Str("message", appErr.Message).
				Msg("Request rejected")
		}

		if c.Writer.Written() {
			return
		}

		c.HTML(appErr.HTTPStatus, "error", gin.H{
			"title":   "Error",
			"message": appErr.Message,
			"status":  appErr.HTTPStatus,
		})
	}
}
