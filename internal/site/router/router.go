package router

import (
	"net/http"

	"github.com/craftline/website-be/internal/site/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "site-service",
		})
	})

	formHandler := handler.NewFormHandler(deps)

	api := r.Group("/api")
	{
		api.POST("/contact", formHandler.SubmitContact)
		api.POST("/subscribe", formHandler.SubmitSubscribe)
		api.POST("/job-application", formHandler.SubmitJobApplication)
	}

	return r
}
