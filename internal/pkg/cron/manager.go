package cron

import (
	"Lumina/internal/pkg/consts"
	"Lumina/internal/pkg/logger"
	"Lumina/internal/pkg/mq"
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Manager 周期调度器：到点后只向任务队列投递，不在调度线程里执行任务
type Manager struct {
	engine   *cron.Cron
	producer *mq.Producer
}

func NewCronManager(producer *mq.Producer) *Manager {
	return &Manager{
		engine:   cron.New(),
		producer: producer,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddFunc("@weekly", s.submitFunc(consts.JobWeeklyInsights)); err != nil {
		return err
	}
	if _, err := s.engine.AddFunc("@daily", s.submitFunc(consts.JobDailySync)); err != nil {
		return err
	}
	return nil
}

func (s *Manager) submitFunc(jobName string) func() {
	return func() {
		traceID := "cron-" + uuid.NewString()
		ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

		if err := s.producer.Submit(ctx, jobName, nil); err != nil {
			log.ErrorContext(ctx, "submit scheduled job failed", "job", jobName, "err", err)
		}
	}
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
