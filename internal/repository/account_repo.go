package repository

import (
	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AccountRepo interface {
	GetFirstAccountByUserId(ctx context.Context, userID uint64) (*model.ConnectedAccount, error)
	CreateAccountWithData(ctx context.Context, account *model.ConnectedAccount, videos []*model.Video, snapshots []*model.AnalyticsSnapshot) error
}

type AccountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &AccountRepoImpl{db: db}
}

// GetFirstAccountByUserId 按创建顺序取用户的第一个已连接频道
func (s *AccountRepoImpl) GetFirstAccountByUserId(ctx context.Context, userID uint64) (*model.ConnectedAccount, error) {
	account := &model.ConnectedAccount{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, consts.PlatformYouTube).
		Order("id ASC").
		First(&account)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return account, nil
}

// CreateAccountWithData 在单个事务内创建频道及其视频与快照
func (s *AccountRepoImpl) CreateAccountWithData(ctx context.Context, account *model.ConnectedAccount, videos []*model.Video, snapshots []*model.AnalyticsSnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(account); result.Error != nil {
			return result.Error
		}

		for _, video := range videos {
			video.ConnectedAccountID = account.ID
		}
		if len(videos) > 0 {
			if result := tx.Create(videos); result.Error != nil {
				return result.Error
			}
		}

		for _, snapshot := range snapshots {
			snapshot.ConnectedAccountID = account.ID
		}
		if len(snapshots) > 0 {
			if result := tx.Create(snapshots); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}
