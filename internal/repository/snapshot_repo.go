package repository

import (
	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SnapshotRepo interface {
	GetLatestSubscriberCount(ctx context.Context, accountID uint64, until time.Time) (int64, error)
	GetDailySnapshotsSince(ctx context.Context, accountID uint64, since time.Time) ([]*model.AnalyticsSnapshot, error)
}

type SnapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &SnapshotRepoImpl{db: db}
}

// GetLatestSubscriberCount 取截止时刻之前最新一条快照的订阅数，无快照时返回 0
func (s *SnapshotRepoImpl) GetLatestSubscriberCount(ctx context.Context, accountID uint64, until time.Time) (int64, error) {
	snapshot := &model.AnalyticsSnapshot{}
	result := s.db.WithContext(ctx).
		Select("subscriber_count").
		Where("connected_account_id = ? AND snapshot_date <= ?", accountID, until).
		Order("snapshot_date DESC").
		First(&snapshot)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, result.Error
	}

	return snapshot.SubscriberCount, nil
}

func (s *SnapshotRepoImpl) GetDailySnapshotsSince(ctx context.Context, accountID uint64, since time.Time) ([]*model.AnalyticsSnapshot, error) {
	snapshots := make([]*model.AnalyticsSnapshot, 0)
	result := s.db.WithContext(ctx).
		Where("connected_account_id = ? AND snapshot_date >= ? AND period_type = ?",
			accountID, since, consts.PeriodTypeDaily).
		Order("snapshot_date ASC").
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}
