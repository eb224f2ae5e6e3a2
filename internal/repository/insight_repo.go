package repository

import (
	"Lumina/internal/model"
	"context"

	"gorm.io/gorm"
)

type InsightRepo interface {
	GetByUserId(ctx context.Context, userID uint64, limit int) ([]*model.AIInsight, error)
	CountByUserId(ctx context.Context, userID uint64) (int64, error)
	CreateInsights(ctx context.Context, insights []*model.AIInsight) error
}

type InsightRepoImpl struct {
	db *gorm.DB
}

func NewInsightRepo(db *gorm.DB) InsightRepo {
	return &InsightRepoImpl{db: db}
}

func (s *InsightRepoImpl) GetByUserId(ctx context.Context, userID uint64, limit int) ([]*model.AIInsight, error) {
	insights := make([]*model.AIInsight, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&insights)
	if result.Error != nil {
		return nil, result.Error
	}
	return insights, nil
}

func (s *InsightRepoImpl) CountByUserId(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.AIInsight{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CreateInsights 单事务批量写入，任一失败则整体回滚
func (s *InsightRepoImpl) CreateInsights(ctx context.Context, insights []*model.AIInsight) error {
	if len(insights) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Create(insights)
		return result.Error
	})
}
