package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authorModel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares; ErrorHandler runs innermost so Logger sees its status
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
	)

	router.SetHTMLTemplate(c.Templates)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/", redirectTo(authorModel.ListURL))

	catalog := router.Group("/catalog")
	{
		catalog.GET("", redirectTo(authorModel.ListURL))

		c.AuthorHandler.RegisterRoutes(catalog)
		c.GenreHandler.RegisterRoutes(catalog)
	}

	return router
}

func redirectTo(location string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, location)
	}
}

// ========================================
// HEALTH CHECK
// ========================================

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
