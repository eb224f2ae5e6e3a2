package repository

import (
	"Lumina/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetAllUserIds(ctx context.Context) ([]uint64, error)
	CountUsers(ctx context.Context) (int64, error)
	CreateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetAllUserIds(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Order("id ASC").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (s *UserRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.User{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Create(user)
	return result.Error
}

// DeleteUser 删除用户及其全部附属数据
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIds := make([]uint64, 0)
		if result := tx.Model(&model.ConnectedAccount{}).Where("user_id = ?", id).Pluck("id", &accountIds); result.Error != nil {
			return result.Error
		}

		if len(accountIds) > 0 {
			if result := tx.Where("connected_account_id IN ?", accountIds).Delete(&model.Video{}); result.Error != nil {
				return result.Error
			}
			if result := tx.Where("connected_account_id IN ?", accountIds).Delete(&model.AnalyticsSnapshot{}); result.Error != nil {
				return result.Error
			}
			if result := tx.Where("user_id = ?", id).Delete(&model.ConnectedAccount{}); result.Error != nil {
				return result.Error
			}
		}

		if result := tx.Where("user_id = ?", id).Delete(&model.AIInsight{}); result.Error != nil {
			return result.Error
		}

		result := tx.Delete(&model.User{}, id)
		return result.Error
	})
}
