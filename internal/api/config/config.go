package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件与环境变量加载配置并填充到 Cfg
// 环境变量形如 LUMINA_DATABASE_DSN 覆盖同名配置项
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("lumina")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.max_idle", 10)
	viper.SetDefault("database.max_open", 100)
	viper.SetDefault("database.max_lifetime", 60)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.expire_hours", 24*7)
	viper.SetDefault("cors.allow_origins", []string{"*"})
	viper.SetDefault("kafka.job_topic", "lumina-jobs")
	viper.SetDefault("kafka.group_id", "lumina-job-worker")
	viper.SetDefault("kafka.consumer.session_timeout", 10)
	viper.SetDefault("kafka.consumer.heartbeat_interval", 3)
	viper.SetDefault("kafka.consumer.rebalance_timeout", 60)
	viper.SetDefault("kafka.consumer.max_processing_time", 120)
}
