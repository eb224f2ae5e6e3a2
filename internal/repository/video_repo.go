package repository

import (
	"Lumina/internal/model"
	"context"

	"gorm.io/gorm"
)

// VideoCounterSum 视频计数聚合结果
type VideoCounterSum struct {
	TotalViews    int64
	TotalLikes    int64
	TotalComments int64
	TotalVideos   int64
}

type VideoRepo interface {
	SumCountersByAccountId(ctx context.Context, accountID uint64) (*VideoCounterSum, error)
	CountByAccountId(ctx context.Context, accountID uint64) (int64, error)
	GetPageByAccountId(ctx context.Context, accountID uint64, page int, pageSize int) ([]*model.Video, error)
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db: db}
}

func (s *VideoRepoImpl) SumCountersByAccountId(ctx context.Context, accountID uint64) (*VideoCounterSum, error) {
	sum := &VideoCounterSum{}
	result := s.db.WithContext(ctx).
		Model(&model.Video{}).
		Select(
			"COALESCE(SUM(view_count), 0) AS total_views",
			"COALESCE(SUM(like_count), 0) AS total_likes",
			"COALESCE(SUM(comment_count), 0) AS total_comments",
			"COUNT(id) AS total_videos",
		).
		Where("connected_account_id = ?", accountID).
		Scan(sum)
	if result.Error != nil {
		return nil, result.Error
	}
	return sum, nil
}

func (s *VideoRepoImpl) CountByAccountId(ctx context.Context, accountID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("connected_account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetPageByAccountId 按发布时间倒序分页，NULL 发布时间排在最后
func (s *VideoRepoImpl) GetPageByAccountId(ctx context.Context, accountID uint64, page int, pageSize int) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	offset := (page - 1) * pageSize
	result := s.db.WithContext(ctx).
		Where("connected_account_id = ?", accountID).
		Order("published_at IS NULL, published_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}
	return videos, nil
}
