package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, HashedPassword: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestYoutubeService_ConnectChannelDefaults(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))
	user := createTestUser(t, db, "creator@example.com")

	account, err := svc.ConnectChannel(context.Background(), user.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.NotZero(t, account.ID)
	assert.Equal(t, consts.PlatformYouTube, account.Platform)
	require.NotNil(t, account.ChannelName)
	assert.Equal(t, "My Channel", *account.ChannelName)
	require.NotNil(t, account.ChannelID)
	assert.True(t, strings.HasPrefix(*account.ChannelID, "UC_mock_"))
}

func TestYoutubeService_ConnectChannelCustomName(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))
	user := createTestUser(t, db, "creator@example.com")

	name := "Tech Reviews"
	account, err := svc.ConnectChannel(context.Background(), user.ID, &name)
	require.NoError(t, err)
	require.NotNil(t, account.ChannelName)
	assert.Equal(t, "Tech Reviews", *account.ChannelName)
}

func TestYoutubeService_GeneratedVideoRanges(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))
	user := createTestUser(t, db, "creator@example.com")

	account, err := svc.ConnectChannel(context.Background(), user.ID, nil)
	require.NoError(t, err)

	var videos []*model.Video
	require.NoError(t, db.Where("connected_account_id = ?", account.ID).Find(&videos).Error)
	require.Len(t, videos, 5)

	now := time.Now().UTC()
	for _, video := range videos {
		assert.GreaterOrEqual(t, video.ViewCount, int64(100))
		assert.LessOrEqual(t, video.ViewCount, int64(50000))
		assert.GreaterOrEqual(t, video.LikeCount, video.ViewCount/100)
		assert.LessOrEqual(t, video.LikeCount, video.ViewCount/20)
		assert.GreaterOrEqual(t, video.CommentCount, video.ViewCount/500)
		assert.LessOrEqual(t, video.CommentCount, video.ViewCount/100)

		require.NotNil(t, video.DurationSeconds)
		assert.GreaterOrEqual(t, *video.DurationSeconds, 180)
		assert.LessOrEqual(t, *video.DurationSeconds, 1200)

		require.NotNil(t, video.PublishedAt)
		age := now.Sub(*video.PublishedAt)
		assert.GreaterOrEqual(t, age, 7*24*time.Hour-time.Minute)
		assert.LessOrEqual(t, age, 90*24*time.Hour+time.Minute)

		require.NotNil(t, video.Title)
		assert.NotEmpty(t, *video.Title)
	}
}

func TestYoutubeService_GeneratedSnapshots(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))
	user := createTestUser(t, db, "creator@example.com")

	account, err := svc.ConnectChannel(context.Background(), user.ID, nil)
	require.NoError(t, err)

	var snapshots []*model.AnalyticsSnapshot
	require.NoError(t, db.Where("connected_account_id = ?", account.ID).
		Order("snapshot_date ASC").Find(&snapshots).Error)
	require.Len(t, snapshots, 30)

	for _, snapshot := range snapshots {
		assert.Equal(t, consts.PeriodTypeDaily, snapshot.PeriodType)
		assert.GreaterOrEqual(t, snapshot.TotalViews, int64(0))
		assert.GreaterOrEqual(t, snapshot.SubscriberCount, int64(0))
		assert.Equal(t, snapshot.TotalViews/30, snapshot.TotalLikes)
		assert.Equal(t, snapshot.TotalViews/100, snapshot.TotalComments)
	}

	// 快照逐日递进，最新一天最接近当前时间
	last := snapshots[len(snapshots)-1].SnapshotDate
	assert.WithinDuration(t, time.Now().UTC(), last, time.Minute)
	for i := 1; i < len(snapshots); i++ {
		assert.True(t, snapshots[i].SnapshotDate.After(snapshots[i-1].SnapshotDate))
	}

	// 线性项按距今天数计：最早一天的订阅数必然高于最新一天
	// (29*5 的线性差远大于 [-2,10] 的噪声幅度)
	assert.Greater(t, snapshots[0].SubscriberCount, snapshots[len(snapshots)-1].SubscriberCount)
}

func TestYoutubeService_ConnectInvalidatesAnalyticsCache(t *testing.T) {
	db := setupTestDB(t)
	mr := setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))
	user := createTestUser(t, db, "creator@example.com")
	other := createTestUser(t, db, "other@example.com")

	mr.Set(fmt.Sprintf("%s%d:30", consts.AnalyticsOverviewKey, user.ID), "{}")
	mr.Set(fmt.Sprintf("%s%d:1:10", consts.AnalyticsVideosKey, user.ID), "{}")
	mr.Set(fmt.Sprintf("%s%d:30", consts.AnalyticsGrowthKey, user.ID), "{}")
	otherKey := fmt.Sprintf("%s%d:30", consts.AnalyticsOverviewKey, other.ID)
	mr.Set(otherKey, "{}")

	_, err := svc.ConnectChannel(context.Background(), user.ID, nil)
	require.NoError(t, err)

	// 本用户的聚合缓存被清空，其他用户不受影响
	assert.False(t, mr.Exists(fmt.Sprintf("%s%d:30", consts.AnalyticsOverviewKey, user.ID)))
	assert.False(t, mr.Exists(fmt.Sprintf("%s%d:1:10", consts.AnalyticsVideosKey, user.ID)))
	assert.False(t, mr.Exists(fmt.Sprintf("%s%d:30", consts.AnalyticsGrowthKey, user.ID)))
	assert.True(t, mr.Exists(otherKey))
}

func TestYoutubeService_ConnectSucceedsWhenCacheDown(t *testing.T) {
	db := setupTestDB(t)
	mr := setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))
	user := createTestUser(t, db, "creator@example.com")

	mr.Close()

	account, err := svc.ConnectChannel(context.Background(), user.ID, nil)
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
}

func TestYoutubeService_ConnectRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := NewYoutubeService(repository.NewAccountRepo(db))

	// 外键不存在的用户，事务内任何写入都不应落库
	_, err := svc.ConnectChannel(context.Background(), 424242, nil)
	if err == nil {
		t.Skip("foreign keys not enforced by this driver build")
	}

	var accounts int64
	require.NoError(t, db.Model(&model.ConnectedAccount{}).Count(&accounts).Error)
	assert.Zero(t, accounts)

	var videos int64
	require.NoError(t, db.Model(&model.Video{}).Count(&videos).Error)
	assert.Zero(t, videos)
}
