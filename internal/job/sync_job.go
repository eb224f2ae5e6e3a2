package job

import (
	"Lumina/internal/pkg/consts"
	"context"
	log "log/slog"
)

// SyncJob 每日数据同步占位任务
// 接入真实平台 API 之前始终报告成功
type SyncJob struct {
}

func NewSyncJob() *SyncJob {
	return &SyncJob{}
}

func (s *SyncJob) Name() string {
	return consts.JobDailySync
}

func (s *SyncJob) Run(ctx context.Context, _ []byte) error {
	log.InfoContext(ctx, "daily sync completed (mock, no real API)")
	return nil
}
