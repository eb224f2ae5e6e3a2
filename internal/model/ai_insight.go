package model

import (
	"time"
)

type AIInsight struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;index:idx_insight_user_id" json:"user_id"`
	InsightType string `gorm:"type:varchar(50);not null" json:"insight_type"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Priority    string `gorm:"type:varchar(20);not null;default:medium" json:"priority"` // low / medium / high
	IsRead      bool   `gorm:"type:tinyint(1);not null;default:0" json:"is_read"`
	CreatedAt   time.Time

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (AIInsight) TableName() string {
	return "ai_insights"
}
