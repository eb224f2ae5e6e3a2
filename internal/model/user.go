package model

import (
	"time"
)

type User struct {
	ID             uint64  `gorm:"primaryKey"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	HashedPassword string  `gorm:"type:varchar(255);not null"`
	FullName       *string `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ConnectedAccounts []ConnectedAccount `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	AIInsights        []AIInsight        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
