package dto

import "time"

// ConnectChannelDTO 连接频道请求体，频道名可选
type ConnectChannelDTO struct {
	ChannelName *string `json:"channel_name" binding:"omitempty,max=255"`
}

// ConnectedAccountDTO 已连接频道信息
type ConnectedAccountDTO struct {
	ID          uint64    `json:"id"`
	Platform    string    `json:"platform"`
	ChannelID   *string   `json:"channel_id"`
	ChannelName *string   `json:"channel_name"`
	CreatedAt   time.Time `json:"created_at"`
}
