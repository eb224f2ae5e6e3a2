package mq

import (
	"context"

	"github.com/goccy/go-json"
)

// JobMessage 任务提交消息：任务名 + 可选载荷
type JobMessage struct {
	Job     string          `json:"job"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Runner 后台任务的执行契约
type Runner interface {
	Name() string
	Run(ctx context.Context, payload []byte) error
}
