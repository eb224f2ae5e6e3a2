package handler

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/response"
	"Lumina/internal/service"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	insightSvc service.InsightService
}

func NewAIHandler(insightSvc service.InsightService) *AIHandler {
	return &AIHandler{
		insightSvc: insightSvc,
	}
}

func (s *AIHandler) GetSuggestions(c *gin.Context) {
	var query dto.SuggestionQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	list, err := s.insightSvc.GetSuggestions(c.Request.Context(), userID, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
