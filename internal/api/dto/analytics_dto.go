package dto

import "time"

// PeriodQueryDTO 时间窗口查询参数
type PeriodQueryDTO struct {
	PeriodDays int `form:"period_days,default=30" binding:"min=1,max=90"`
}

// VideoPageQueryDTO 视频分页查询参数
type VideoPageQueryDTO struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=50"`
}

// OverviewDTO 仪表盘总览
type OverviewDTO struct {
	TotalViews      int64 `json:"total_views"`
	TotalLikes      int64 `json:"total_likes"`
	TotalComments   int64 `json:"total_comments"`
	TotalVideos     int64 `json:"total_videos"`
	SubscriberCount int64 `json:"subscriber_count"`
	PeriodDays      int   `json:"period_days"`
}

// VideoItemDTO 视频列表中的单条记录
type VideoItemDTO struct {
	ID           uint64     `json:"id"`
	ExternalID   string     `json:"external_id"`
	Title        *string    `json:"title"`
	ViewCount    int64      `json:"view_count"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	PublishedAt  *time.Time `json:"published_at"`
	ThumbnailURL *string    `json:"thumbnail_url"`
}

// VideoListDTO 分页视频列表
type VideoListDTO struct {
	Items    []*VideoItemDTO `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// GrowthPointDTO 增长曲线上的单个点
type GrowthPointDTO struct {
	Date        string `json:"date"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Subscribers int64  `json:"subscribers"`
}

// GrowthDTO 增长曲线数据
type GrowthDTO struct {
	Data       []*GrowthPointDTO `json:"data"`
	PeriodDays int               `json:"period_days"`
}
