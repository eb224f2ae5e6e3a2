package model

import (
	"time"
)

type ConnectedAccount struct {
	ID           uint64  `gorm:"primaryKey"`
	UserID       uint64  `gorm:"not null;index:idx_user_id" json:"user_id"`
	Platform     string  `gorm:"type:varchar(50);not null;default:youtube" json:"platform"`
	ChannelID    *string `gorm:"type:varchar(255)" json:"channel_id"`
	ChannelName  *string `gorm:"type:varchar(255)" json:"channel_name"`
	AccessToken  *string `gorm:"type:varchar(512)" json:"-"`
	RefreshToken *string `gorm:"type:varchar(512)" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// 关联关系
	User      User                `gorm:"foreignKey:UserID;references:ID"`
	Videos    []Video             `gorm:"foreignKey:ConnectedAccountID;references:ID;constraint:OnDelete:CASCADE"`
	Snapshots []AnalyticsSnapshot `gorm:"foreignKey:ConnectedAccountID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ConnectedAccount) TableName() string {
	return "connected_accounts"
}
