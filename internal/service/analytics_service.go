package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/pkg/redis"
	"Lumina/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type AnalyticsService interface {
	GetOverview(ctx context.Context, userID uint64, periodDays int) (*dto.OverviewDTO, error)
	GetVideos(ctx context.Context, userID uint64, page int, pageSize int) (*dto.VideoListDTO, error)
	GetGrowth(ctx context.Context, userID uint64, periodDays int) (*dto.GrowthDTO, error)
}

type AnalyticsServiceImpl struct {
	accountRepo  repository.AccountRepo
	videoRepo    repository.VideoRepo
	snapshotRepo repository.SnapshotRepo
}

func NewAnalyticsService(
	accountRepo repository.AccountRepo,
	videoRepo repository.VideoRepo,
	snapshotRepo repository.SnapshotRepo,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		accountRepo:  accountRepo,
		videoRepo:    videoRepo,
		snapshotRepo: snapshotRepo,
	}
}

// GetOverview 仪表盘总览，旁路缓存。无已连接频道时返回全零结构
func (s *AnalyticsServiceImpl) GetOverview(ctx context.Context, userID uint64, periodDays int) (*dto.OverviewDTO, error) {
	key := fmt.Sprintf("%s%d:%d", consts.AnalyticsOverviewKey, userID, periodDays)
	overview := &dto.OverviewDTO{}
	if cacheLoad(ctx, key, overview) {
		return overview, nil
	}

	account, err := s.accountRepo.GetFirstAccountByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &dto.OverviewDTO{PeriodDays: periodDays}, nil
	}

	// 视频计数为全量累计，时间窗口仅约束快照取值
	sum, err := s.videoRepo.SumCountersByAccountId(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	subscriberCount, err := s.snapshotRepo.GetLatestSubscriberCount(ctx, account.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	overview = &dto.OverviewDTO{
		TotalViews:      sum.TotalViews,
		TotalLikes:      sum.TotalLikes,
		TotalComments:   sum.TotalComments,
		TotalVideos:     sum.TotalVideos,
		SubscriberCount: subscriberCount,
		PeriodDays:      periodDays,
	}

	cacheStore(ctx, key, overview)
	return overview, nil
}

// GetVideos 分页视频列表，旁路缓存
func (s *AnalyticsServiceImpl) GetVideos(ctx context.Context, userID uint64, page int, pageSize int) (*dto.VideoListDTO, error) {
	key := fmt.Sprintf("%s%d:%d:%d", consts.AnalyticsVideosKey, userID, page, pageSize)
	list := &dto.VideoListDTO{}
	if cacheLoad(ctx, key, list) {
		return list, nil
	}

	account, err := s.accountRepo.GetFirstAccountByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &dto.VideoListDTO{
			Items:    make([]*dto.VideoItemDTO, 0),
			Page:     page,
			PageSize: pageSize,
		}, nil
	}

	total, err := s.videoRepo.CountByAccountId(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.GetPageByAccountId(ctx, account.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.VideoItemDTO, 0, len(videos))
	for _, video := range videos {
		item := &dto.VideoItemDTO{}
		if err = copier.Copy(item, video); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	list = &dto.VideoListDTO{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	cacheStore(ctx, key, list)
	return list, nil
}

// GetGrowth 增长曲线，按日快照升序，旁路缓存
func (s *AnalyticsServiceImpl) GetGrowth(ctx context.Context, userID uint64, periodDays int) (*dto.GrowthDTO, error) {
	key := fmt.Sprintf("%s%d:%d", consts.AnalyticsGrowthKey, userID, periodDays)
	growth := &dto.GrowthDTO{}
	if cacheLoad(ctx, key, growth) {
		return growth, nil
	}

	account, err := s.accountRepo.GetFirstAccountByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &dto.GrowthDTO{
			Data:       make([]*dto.GrowthPointDTO, 0),
			PeriodDays: periodDays,
		}, nil
	}

	since := time.Now().UTC().AddDate(0, 0, -periodDays)
	snapshots, err := s.snapshotRepo.GetDailySnapshotsSince(ctx, account.ID, since)
	if err != nil {
		return nil, err
	}

	points := make([]*dto.GrowthPointDTO, 0, len(snapshots))
	for _, snapshot := range snapshots {
		points = append(points, &dto.GrowthPointDTO{
			Date:        snapshot.SnapshotDate.Format(time.DateOnly),
			Views:       snapshot.TotalViews,
			Likes:       snapshot.TotalLikes,
			Comments:    snapshot.TotalComments,
			Subscribers: snapshot.SubscriberCount,
		})
	}

	growth = &dto.GrowthDTO{
		Data:       points,
		PeriodDays: periodDays,
	}

	cacheStore(ctx, key, growth)
	return growth, nil
}

// cacheLoad 读缓存，命中时反序列化到 out 并返回 true
// 缓存读取失败视同未命中，绝不影响请求
func cacheLoad(ctx context.Context, key string, out interface{}) bool {
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "analytics cache get failed", "key", key, "err", err)
		return false
	}
	if value == "" {
		return false
	}
	if err = json.Unmarshal([]byte(value), out); err != nil {
		log.WarnContext(ctx, "analytics cache unmarshal failed", "key", key, "err", err)
		return false
	}
	return true
}

// cacheStore 写缓存，失败仅记录日志
func cacheStore(ctx context.Context, key string, value interface{}) {
	jsonStr, err := json.Marshal(value)
	if err != nil {
		log.WarnContext(ctx, "analytics cache marshal failed", "key", key, "err", err)
		return
	}
	if err = redis.SetWithExpiration(ctx, key, string(jsonStr), consts.AnalyticsCacheTTL); err != nil {
		log.WarnContext(ctx, "analytics cache set failed", "key", key, "err", err)
	}
}
