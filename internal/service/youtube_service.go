package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/pkg/redis"
	"Lumina/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"time"

	"github.com/jinzhu/copier"
)

// mockVideoTitles 模拟频道的候选视频标题
var mockVideoTitles = []string{
	"How to Get Started with Content Creation",
	"My Best Video Yet - Tips and Tricks",
	"Behind the Scenes: A Day in My Life",
	"Tutorial: Editing Like a Pro",
	"Q&A: Answering Your Questions",
	"Collaboration with Friends",
	"Weekly Vlog #1",
	"Top 10 Tips for Growth",
}

const (
	mockVideoCount     = 5
	mockSnapshotDays   = 30
	defaultChannelName = "My Channel"
)

type YoutubeService interface {
	ConnectChannel(ctx context.Context, userID uint64, channelName *string) (*dto.ConnectedAccountDTO, error)
}

type YoutubeServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewYoutubeService(accountRepo repository.AccountRepo) YoutubeService {
	return &YoutubeServiceImpl{
		accountRepo: accountRepo,
	}
}

// ConnectChannel 创建一个模拟频道，并在同一事务内生成视频与 30 天快照
func (s *YoutubeServiceImpl) ConnectChannel(ctx context.Context, userID uint64, channelName *string) (*dto.ConnectedAccountDTO, error) {
	name := defaultChannelName
	if channelName != nil && *channelName != "" {
		name = *channelName
	}

	channelID := fmt.Sprintf("UC_mock_%d_%d", userID, randInt(1000, 9999))
	account := &model.ConnectedAccount{
		UserID:      userID,
		Platform:    consts.PlatformYouTube,
		ChannelID:   &channelID,
		ChannelName: &name,
	}

	videos := s.generateVideos(userID)
	snapshots := s.generateSnapshots()

	err := s.accountRepo.CreateAccountWithData(ctx, account, videos, snapshots)
	if err != nil {
		return nil, err
	}

	s.invalidateAnalyticsCache(ctx, userID)

	accountDTO := &dto.ConnectedAccountDTO{}
	err = copier.Copy(accountDTO, account)
	if err != nil {
		return nil, err
	}
	return accountDTO, nil
}

// invalidateAnalyticsCache 新频道落库后清掉该用户的聚合缓存
// 失败仅记录日志，不影响连接结果
func (s *YoutubeServiceImpl) invalidateAnalyticsCache(ctx context.Context, userID uint64) {
	prefixes := []string{
		fmt.Sprintf("%s%d:", consts.AnalyticsOverviewKey, userID),
		fmt.Sprintf("%s%d:", consts.AnalyticsVideosKey, userID),
		fmt.Sprintf("%s%d:", consts.AnalyticsGrowthKey, userID),
	}
	for _, prefix := range prefixes {
		if err := redis.DeleteByPrefix(ctx, prefix); err != nil {
			log.WarnContext(ctx, "analytics cache invalidate failed", "prefix", prefix, "err", err)
		}
	}
}

// generateVideos 生成 5 条视频，计数取值范围与演示数据保持一致
func (s *YoutubeServiceImpl) generateVideos(userID uint64) []*model.Video {
	videos := make([]*model.Video, 0, mockVideoCount)
	for i := 0; i < mockVideoCount; i++ {
		title := mockVideoTitles[i]
		publishedAt := time.Now().UTC().AddDate(0, 0, -randInt(7, 90))
		views := int64(randInt(100, 50000))
		duration := randInt(180, 1200)

		videos = append(videos, &model.Video{
			ExternalID:      fmt.Sprintf("vid_%d_%d", userID, i),
			Title:           &title,
			PublishedAt:     &publishedAt,
			ViewCount:       views,
			LikeCount:       int64(randInt(int(views/100), int(views/20))),
			CommentCount:    int64(randInt(int(views/500), int(views/100))),
			DurationSeconds: &duration,
		})
	}
	return videos
}

// generateSnapshots 生成最近 30 天的每日快照，走势为基数加线性项加有界噪声
func (s *YoutubeServiceImpl) generateSnapshots() []*model.AnalyticsSnapshot {
	snapshots := make([]*model.AnalyticsSnapshot, 0, mockSnapshotDays)
	baseViews := randInt(5000, 20000)
	baseSubs := randInt(100, 5000)

	for daysAgo := 0; daysAgo < mockSnapshotDays; daysAgo++ {
		snapDate := time.Now().UTC().AddDate(0, 0, -daysAgo)
		delta := randInt(-500, 1500)
		totalViews := int64(max(0, baseViews+daysAgo*200+delta*10))
		subs := int64(max(0, baseSubs+daysAgo*5+randInt(-2, 10)))

		snapshots = append(snapshots, &model.AnalyticsSnapshot{
			SnapshotDate:    snapDate,
			PeriodType:      consts.PeriodTypeDaily,
			TotalViews:      totalViews,
			TotalLikes:      totalViews / 30,
			TotalComments:   totalViews / 100,
			SubscriberCount: subs,
		})
	}
	return snapshots
}

// randInt 返回 [min, max] 闭区间内的随机整数
func randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}
