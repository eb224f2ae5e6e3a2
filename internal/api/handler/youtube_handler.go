package handler

import (
	"io"

	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/response"
	"Lumina/internal/service"

	"github.com/gin-gonic/gin"
)

type YoutubeHandler struct {
	youtubeSvc service.YoutubeService
}

func NewYoutubeHandler(youtubeSvc service.YoutubeService) *YoutubeHandler {
	return &YoutubeHandler{
		youtubeSvc: youtubeSvc,
	}
}

// Connect 连接模拟频道，请求体可为空
func (s *YoutubeHandler) Connect(c *gin.Context) {
	var connectDTO dto.ConnectChannelDTO
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		err := c.ShouldBindJSON(&connectDTO)
		if err != nil && err != io.EOF {
			response.Error(c, err)
			return
		}
	}

	userID := c.GetUint64("user_id")
	account, err := s.youtubeSvc.ConnectChannel(c.Request.Context(), userID, connectDTO.ChannelName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, account)
}
