package service

import (
	"context"
	"testing"

	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInsightService(db *gorm.DB) InsightService {
	return NewInsightService(repository.NewUserRepo(db), repository.NewInsightRepo(db))
}

func TestInsightService_GenerateWeeklyInsights(t *testing.T) {
	db := setupTestDB(t)
	svc := newInsightService(db)

	users := []*model.User{
		createTestUser(t, db, "a@example.com"),
		createTestUser(t, db, "b@example.com"),
		createTestUser(t, db, "c@example.com"),
	}

	created, err := svc.GenerateWeeklyInsights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(users), created)

	validPriorities := map[string]bool{
		consts.PriorityLow:    true,
		consts.PriorityMedium: true,
		consts.PriorityHigh:   true,
	}
	for _, user := range users {
		var insights []*model.AIInsight
		require.NoError(t, db.Where("user_id = ?", user.ID).Find(&insights).Error)
		require.Len(t, insights, 1)
		assert.NotEmpty(t, insights[0].InsightType)
		assert.NotEmpty(t, insights[0].Title)
		assert.NotEmpty(t, insights[0].Content)
		assert.True(t, validPriorities[insights[0].Priority])
		assert.False(t, insights[0].IsRead)
	}
}

func TestInsightService_GenerateWithNoUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := newInsightService(db)

	created, err := svc.GenerateWeeklyInsights(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestInsightService_GetSuggestionsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newInsightService(db)
	user := createTestUser(t, db, "reader@example.com")

	for i := 0; i < 3; i++ {
		entry := suggestionCatalog[i]
		require.NoError(t, db.Create(&model.AIInsight{
			UserID:      user.ID,
			InsightType: entry.InsightType,
			Title:       entry.Title,
			Content:     entry.Content,
			Priority:    consts.PriorityMedium,
		}).Error)
	}

	list, err := svc.GetSuggestions(context.Background(), user.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Items, 2)
	// 同秒创建时按主键倒序
	assert.Greater(t, list.Items[0].ID, list.Items[1].ID)
	assert.Equal(t, suggestionCatalog[2].Title, list.Items[0].Title)
}

func TestInsightService_GetSuggestionsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := newInsightService(db)
	user := createTestUser(t, db, "fresh@example.com")

	list, err := svc.GetSuggestions(context.Background(), user.ID, 20)
	require.NoError(t, err)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Total)
}
