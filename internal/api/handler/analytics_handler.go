package handler

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/response"
	"Lumina/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsHandler) GetOverview(c *gin.Context) {
	var query dto.PeriodQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	overview, err := s.analyticsSvc.GetOverview(c.Request.Context(), userID, query.PeriodDays)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

func (s *AnalyticsHandler) GetVideos(c *gin.Context) {
	var query dto.VideoPageQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	list, err := s.analyticsSvc.GetVideos(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *AnalyticsHandler) GetGrowth(c *gin.Context) {
	var query dto.PeriodQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	growth, err := s.analyticsSvc.GetGrowth(c.Request.Context(), userID, query.PeriodDays)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, growth)
}
