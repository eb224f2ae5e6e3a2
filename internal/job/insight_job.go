package job

import (
	"Lumina/internal/pkg/consts"
	"Lumina/internal/service"
	"context"
	log "log/slog"
)

// InsightJob 每周为全部用户追加一条 AI 建议
type InsightJob struct {
	insightSvc service.InsightService
}

func NewInsightJob(insightSvc service.InsightService) *InsightJob {
	return &InsightJob{
		insightSvc: insightSvc,
	}
}

func (s *InsightJob) Name() string {
	return consts.JobWeeklyInsights
}

func (s *InsightJob) Run(ctx context.Context, _ []byte) error {
	created, err := s.insightSvc.GenerateWeeklyInsights(ctx)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "weekly insights generated", "created", created)
	return nil
}
