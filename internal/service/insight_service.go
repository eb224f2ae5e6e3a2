package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/repository"
	"context"
	"math/rand"

	"github.com/jinzhu/copier"
)

// suggestionCatalog 固定的建议素材，周期任务与种子数据共用
var suggestionCatalog = []model.AIInsight{
	{InsightType: "posting_time", Title: "Post at 6PM", Content: "Your audience is most active around 6 PM. Try scheduling posts then."},
	{InsightType: "engagement", Title: "Your engagement is dropping", Content: "Consider asking a question in the first 30 seconds to boost comments."},
	{InsightType: "titles", Title: "Try shorter titles", Content: "Videos with titles under 50 characters tend to get more clicks."},
	{InsightType: "thumbnail", Title: "Update thumbnails", Content: "A/B test thumbnails with faces vs. text to see what performs better."},
	{InsightType: "consistency", Title: "Post consistently", Content: "Channels that post at least once a week grow 2x faster."},
	{InsightType: "trending", Title: "Use trending topics", Content: "Check trending topics in your niche and create related content."},
}

var priorities = []string{
	consts.PriorityLow,
	consts.PriorityMedium,
	consts.PriorityHigh,
}

type InsightService interface {
	GetSuggestions(ctx context.Context, userID uint64, limit int) (*dto.SuggestionListDTO, error)
	GenerateWeeklyInsights(ctx context.Context) (int, error)
}

type InsightServiceImpl struct {
	userRepo    repository.UserRepo
	insightRepo repository.InsightRepo
}

func NewInsightService(userRepo repository.UserRepo, insightRepo repository.InsightRepo) InsightService {
	return &InsightServiceImpl{
		userRepo:    userRepo,
		insightRepo: insightRepo,
	}
}

// GetSuggestions 取用户最新的 AI 建议与总数
func (s *InsightServiceImpl) GetSuggestions(ctx context.Context, userID uint64, limit int) (*dto.SuggestionListDTO, error) {
	insights, err := s.insightRepo.GetByUserId(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.insightRepo.CountByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SuggestionDTO, 0, len(insights))
	for _, insight := range insights {
		item := &dto.SuggestionDTO{}
		if err = copier.Copy(item, insight); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &dto.SuggestionListDTO{
		Items: items,
		Total: total,
	}, nil
}

// GenerateWeeklyInsights 为每个用户随机追加一条建议，单事务提交
// 返回创建条数；失败时整体回滚并上抛
func (s *InsightServiceImpl) GenerateWeeklyInsights(ctx context.Context) (int, error) {
	userIds, err := s.userRepo.GetAllUserIds(ctx)
	if err != nil {
		return 0, err
	}

	insights := make([]*model.AIInsight, 0, len(userIds))
	for _, userID := range userIds {
		pick := suggestionCatalog[rand.Intn(len(suggestionCatalog))]
		insights = append(insights, &model.AIInsight{
			UserID:      userID,
			InsightType: pick.InsightType,
			Title:       pick.Title,
			Content:     pick.Content,
			Priority:    priorities[rand.Intn(len(priorities))],
		})
	}

	err = s.insightRepo.CreateInsights(ctx, insights)
	if err != nil {
		return 0, err
	}

	return len(insights), nil
}
