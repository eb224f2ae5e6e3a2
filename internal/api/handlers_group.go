package api

import "Lumina/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	YoutubeHandler   *handler.YoutubeHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AIHandler        *handler.AIHandler
}
