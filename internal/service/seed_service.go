package service

import (
	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/pkg/security"
	"Lumina/internal/repository"
	"context"
	log "log/slog"
)

const (
	demoEmail       = "demo@example.com"
	demoPassword    = "demo123"
	demoName        = "Demo User"
	demoChannelName = "Demo Creator Channel"
)

// demoPriorities 种子建议的优先级，与 suggestionCatalog 顺序一一对应
var demoPriorities = []string{
	consts.PriorityHigh,
	consts.PriorityMedium,
	consts.PriorityMedium,
	consts.PriorityLow,
	consts.PriorityHigh,
	consts.PriorityMedium,
}

type SeedService interface {
	SeedIfEmpty(ctx context.Context) error
}

type SeedServiceImpl struct {
	userRepo    repository.UserRepo
	insightRepo repository.InsightRepo
	youtubeSvc  YoutubeService
}

func NewSeedService(userRepo repository.UserRepo, insightRepo repository.InsightRepo, youtubeSvc YoutubeService) SeedService {
	return &SeedServiceImpl{
		userRepo:    userRepo,
		insightRepo: insightRepo,
		youtubeSvc:  youtubeSvc,
	}
}

// SeedIfEmpty 确保演示账号存在；若此前没有任何用户，额外生成频道与建议数据
func (s *SeedServiceImpl) SeedIfEmpty(ctx context.Context) error {
	demoUser, err := s.userRepo.GetUserByEmail(ctx, demoEmail)
	if err != nil {
		return err
	}

	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return err
	}
	hadUsers := userCount > 0

	if demoUser == nil {
		passwordHash, err := security.HashPassword(demoPassword)
		if err != nil {
			return err
		}
		name := demoName
		demoUser = &model.User{
			Email:          demoEmail,
			HashedPassword: passwordHash,
			FullName:       &name,
		}
		if err = s.userRepo.CreateUser(ctx, demoUser); err != nil {
			return err
		}
		log.InfoContext(ctx, "demo user created", "email", demoEmail)
	}

	if hadUsers {
		return nil
	}

	// 空库首启：补全演示频道与建议
	channelName := demoChannelName
	if _, err = s.youtubeSvc.ConnectChannel(ctx, demoUser.ID, &channelName); err != nil {
		return err
	}

	insights := make([]*model.AIInsight, 0, len(suggestionCatalog))
	for i, entry := range suggestionCatalog {
		insights = append(insights, &model.AIInsight{
			UserID:      demoUser.ID,
			InsightType: entry.InsightType,
			Title:       entry.Title,
			Content:     entry.Content,
			Priority:    demoPriorities[i],
		})
	}
	if err = s.insightRepo.CreateInsights(ctx, insights); err != nil {
		return err
	}

	log.InfoContext(ctx, "seed data created", "email", demoEmail)
	return nil
}
