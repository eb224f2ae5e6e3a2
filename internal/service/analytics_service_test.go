package service

import (
	"context"
	"testing"
	"time"

	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalyticsService(db *gorm.DB) AnalyticsService {
	return NewAnalyticsService(
		repository.NewAccountRepo(db),
		repository.NewVideoRepo(db),
		repository.NewSnapshotRepo(db),
	)
}

func createTestAccount(t *testing.T, db *gorm.DB, userID uint64) *model.ConnectedAccount {
	t.Helper()
	channelID := "UC_test_channel"
	account := &model.ConnectedAccount{
		UserID:    userID,
		Platform:  consts.PlatformYouTube,
		ChannelID: &channelID,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createTestVideo(t *testing.T, db *gorm.DB, accountID uint64, externalID string, views, likes, comments int64, publishedAt *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Video{
		ConnectedAccountID: accountID,
		ExternalID:         externalID,
		ViewCount:          views,
		LikeCount:          likes,
		CommentCount:       comments,
		PublishedAt:        publishedAt,
	}).Error)
}

func createTestSnapshot(t *testing.T, db *gorm.DB, accountID uint64, daysAgo int, periodType string, views, subs int64) {
	t.Helper()
	require.NoError(t, db.Create(&model.AnalyticsSnapshot{
		ConnectedAccountID: accountID,
		SnapshotDate:       time.Now().UTC().AddDate(0, 0, -daysAgo),
		PeriodType:         periodType,
		TotalViews:         views,
		TotalLikes:         views / 30,
		TotalComments:      views / 100,
		SubscriberCount:    subs,
	}).Error)
}

func TestAnalyticsService_OverviewNoAccount(t *testing.T) {
	db := setupTestDB(t)
	mr := setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "empty@example.com")

	overview, err := svc.GetOverview(context.Background(), user.ID, 14)
	require.NoError(t, err)

	assert.Zero(t, overview.TotalViews)
	assert.Zero(t, overview.TotalLikes)
	assert.Zero(t, overview.TotalComments)
	assert.Zero(t, overview.TotalVideos)
	assert.Zero(t, overview.SubscriberCount)
	assert.Equal(t, 14, overview.PeriodDays)

	// 空结果不写缓存
	assert.Empty(t, mr.Keys())
}

func TestAnalyticsService_OverviewTotals(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "stats@example.com")
	account := createTestAccount(t, db, user.ID)

	now := time.Now().UTC()
	createTestVideo(t, db, account.ID, "v1", 100, 10, 1, &now)
	createTestVideo(t, db, account.ID, "v2", 200, 20, 2, &now)
	createTestSnapshot(t, db, account.ID, 2, consts.PeriodTypeDaily, 3000, 500)
	createTestSnapshot(t, db, account.ID, 1, consts.PeriodTypeDaily, 3200, 700)

	overview, err := svc.GetOverview(context.Background(), user.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(300), overview.TotalViews)
	assert.Equal(t, int64(30), overview.TotalLikes)
	assert.Equal(t, int64(3), overview.TotalComments)
	assert.Equal(t, int64(2), overview.TotalVideos)
	assert.Equal(t, int64(700), overview.SubscriberCount)
	assert.Equal(t, 30, overview.PeriodDays)
}

func TestAnalyticsService_VideosPagination(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "pager@example.com")
	account := createTestAccount(t, db, user.ID)

	now := time.Now().UTC()
	for i := 1; i <= 4; i++ {
		publishedAt := now.AddDate(0, 0, -i)
		createTestVideo(t, db, account.ID, "v"+string(rune('0'+i)), int64(i*100), 0, 0, &publishedAt)
	}
	// 无发布时间的视频排在最后
	createTestVideo(t, db, account.ID, "v5", 500, 0, 0, nil)

	ctx := context.Background()

	page1, err := svc.GetVideos(ctx, user.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page1.Total)
	require.Len(t, page1.Items, 2)
	assert.Equal(t, "v1", page1.Items[0].ExternalID)
	assert.Equal(t, "v2", page1.Items[1].ExternalID)

	page2, err := svc.GetVideos(ctx, user.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)
	assert.Equal(t, "v3", page2.Items[0].ExternalID)

	page3, err := svc.GetVideos(ctx, user.ID, 3, 2)
	require.NoError(t, err)
	require.Len(t, page3.Items, 1)
	assert.Equal(t, "v5", page3.Items[0].ExternalID)
	assert.Equal(t, int64(5), page3.Total)

	beyond, err := svc.GetVideos(ctx, user.ID, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(5), beyond.Total)
}

func TestAnalyticsService_VideosNoAccount(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "empty@example.com")

	list, err := svc.GetVideos(context.Background(), user.ID, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.PageSize)
}

func TestAnalyticsService_GrowthWindow(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "growth@example.com")
	account := createTestAccount(t, db, user.ID)

	createTestSnapshot(t, db, account.ID, 40, consts.PeriodTypeDaily, 1000, 100)
	createTestSnapshot(t, db, account.ID, 10, consts.PeriodTypeDaily, 2000, 200)
	createTestSnapshot(t, db, account.ID, 5, consts.PeriodTypeDaily, 3000, 300)
	// 周快照不进增长曲线
	createTestSnapshot(t, db, account.ID, 3, consts.PeriodTypeWeekly, 9000, 900)

	growth, err := svc.GetGrowth(context.Background(), user.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, growth.PeriodDays)
	require.Len(t, growth.Data, 2)
	assert.Equal(t, int64(2000), growth.Data[0].Views)
	assert.Equal(t, int64(3000), growth.Data[1].Views)
	assert.Less(t, growth.Data[0].Date, growth.Data[1].Date)
	assert.Equal(t, int64(300), growth.Data[1].Subscribers)
}

func TestAnalyticsService_CacheHitSkipsDatabase(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "cached@example.com")
	account := createTestAccount(t, db, user.ID)

	now := time.Now().UTC()
	createTestVideo(t, db, account.ID, "v1", 100, 10, 1, &now)
	createTestSnapshot(t, db, account.ID, 1, consts.PeriodTypeDaily, 3000, 500)

	var queries int
	require.NoError(t, db.Callback().Query().After("gorm:query").
		Register("test:count_queries", func(*gorm.DB) { queries++ }))

	ctx := context.Background()

	first, err := svc.GetOverview(ctx, user.ID, 30)
	require.NoError(t, err)
	assert.Greater(t, queries, 0)

	queries = 0
	second, err := svc.GetOverview(ctx, user.ID, 30)
	require.NoError(t, err)
	assert.Zero(t, queries)
	assert.Equal(t, first, second)

	// 不同窗口是不同缓存键，需要回库
	_, err = svc.GetGrowth(ctx, user.ID, 7)
	require.NoError(t, err)
	queries = 0
	_, err = svc.GetGrowth(ctx, user.ID, 14)
	require.NoError(t, err)
	assert.Greater(t, queries, 0)
}

func TestAnalyticsService_CacheDownFallsBackToDatabase(t *testing.T) {
	db := setupTestDB(t)
	mr := setupTestRedis(t)
	svc := newAnalyticsService(db)
	user := createTestUser(t, db, "degraded@example.com")
	account := createTestAccount(t, db, user.ID)

	now := time.Now().UTC()
	createTestVideo(t, db, account.ID, "v1", 100, 10, 1, &now)

	ctx := context.Background()

	first, err := svc.GetOverview(ctx, user.ID, 30)
	require.NoError(t, err)

	mr.Close()

	second, err := svc.GetOverview(ctx, user.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
