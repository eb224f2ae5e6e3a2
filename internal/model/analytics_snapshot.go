package model

import (
	"time"
)

type AnalyticsSnapshot struct {
	ID                 uint64    `gorm:"primaryKey"`
	ConnectedAccountID uint64    `gorm:"not null;index:idx_account_date" json:"connected_account_id"`
	SnapshotDate       time.Time `gorm:"not null;index:idx_account_date" json:"snapshot_date"`
	PeriodType         string    `gorm:"type:varchar(20);not null" json:"period_type"` // daily / weekly
	TotalViews         int64     `gorm:"not null;default:0" json:"total_views"`
	TotalLikes         int64     `gorm:"not null;default:0" json:"total_likes"`
	TotalComments      int64     `gorm:"not null;default:0" json:"total_comments"`
	SubscriberCount    int64     `gorm:"not null;default:0" json:"subscriber_count"`
	CreatedAt          time.Time

	ConnectedAccount ConnectedAccount `gorm:"foreignKey:ConnectedAccountID;references:ID"`
}

func (AnalyticsSnapshot) TableName() string {
	return "analytics_snapshots"
}
