package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

// InitLogger 初始化全局 slog JSON 日志器
func InitLogger() {
	LogWriter = os.Stdout

	handler := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{handler})
	log.SetDefault(logger)
}
