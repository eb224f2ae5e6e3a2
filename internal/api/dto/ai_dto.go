package dto

import "time"

// SuggestionQueryDTO AI 建议查询参数
type SuggestionQueryDTO struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=50"`
}

// SuggestionDTO 单条 AI 建议
type SuggestionDTO struct {
	ID          uint64    `json:"id"`
	InsightType string    `json:"insight_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Priority    string    `json:"priority"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// SuggestionListDTO AI 建议列表
type SuggestionListDTO struct {
	Items []*SuggestionDTO `json:"items"`
	Total int64            `json:"total"`
}
