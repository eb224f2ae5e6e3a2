package api

import (
	"net/http"

	"Lumina/internal/api/middleware"
	"Lumina/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, allowOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(allowOrigins))
	logger.SetupGin(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", group.UserHandler.Register)
		authGroup.POST("/login", group.UserHandler.Login)
	}

	userGroup := r.Group("/user")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("/me", group.UserHandler.GetMe)
	}

	youtubeGroup := r.Group("/youtube")
	youtubeGroup.Use(middleware.AuthMiddleware())
	{
		youtubeGroup.POST("/connect", group.YoutubeHandler.Connect)
	}

	analyticsGroup := r.Group("/analytics")
	analyticsGroup.Use(middleware.AuthMiddleware())
	{
		analyticsGroup.GET("/overview", group.AnalyticsHandler.GetOverview)
		analyticsGroup.GET("/videos", group.AnalyticsHandler.GetVideos)
		analyticsGroup.GET("/growth", group.AnalyticsHandler.GetGrowth)
	}

	aiGroup := r.Group("/ai")
	aiGroup.Use(middleware.AuthMiddleware())
	{
		aiGroup.GET("/suggestions", group.AIHandler.GetSuggestions)
	}

	return r
}
