package model

import (
	"time"
)

type Video struct {
	ID                 uint64     `gorm:"primaryKey"`
	ConnectedAccountID uint64     `gorm:"not null;index:idx_account_id" json:"connected_account_id"`
	ExternalID         string     `gorm:"type:varchar(255);not null;index:idx_external_id" json:"external_id"`
	Title              *string    `gorm:"type:varchar(512)" json:"title"`
	PublishedAt        *time.Time `json:"published_at"`
	ViewCount          int64      `gorm:"not null;default:0" json:"view_count"`
	LikeCount          int64      `gorm:"not null;default:0" json:"like_count"`
	CommentCount       int64      `gorm:"not null;default:0" json:"comment_count"`
	DurationSeconds    *int       `json:"duration_seconds"`
	ThumbnailURL       *string    `gorm:"type:varchar(512)" json:"thumbnail_url"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	ConnectedAccount ConnectedAccount `gorm:"foreignKey:ConnectedAccountID;references:ID"`
}

func (Video) TableName() string {
	return "videos"
}
