package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oceanview/argo-backend-go/internal/config"
	"github.com/oceanview/argo-backend-go/internal/handler"
	"github.com/oceanview/argo-backend-go/internal/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	Float      *handler.FloatHandler
	Trajectory *handler.TrajectoryHandler
	Chat       *handler.ChatHandler
	Auth       *handler.AuthHandler
}

// SetupRouter configures middleware and routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Argo Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		floats := api.Group("/floats")
		{
			floats.GET("", h.Float.ListFloats)
			floats.GET("/:id", h.Float.GetFloat)
			floats.GET("/:id/summary", h.Float.GetFloatSummary)
			floats.GET("/:id/trajectory", h.Trajectory.GetTrajectory)
			floats.GET("/:id/drift", h.Trajectory.GetDriftSeries)
			floats.GET("/:id/profiles", h.Trajectory.GetProfiles)
		}

		chat := api.Group("/chat", middleware.Auth(cfg.JWTSecret))
		{
			chat.POST("", h.Chat.SendMessage)
			chat.GET("/:sessionId", h.Chat.GetHistory)
		}
	}

	return r
}
