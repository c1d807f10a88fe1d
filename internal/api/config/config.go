package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，如 BRIGHTLINE_NOTIFY_SLACK_WEBHOOK_URL
const EnvPrefix = "BRIGHTLINE"

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量优先
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// setDefaults 注册默认值，同时让 AutomaticEnv 能识别到这些 key
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.service_name", "brightline-api")
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "brightline")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.public_endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "blog-media")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.max_width", 1600)

	v.SetDefault("kafka.enable", false)
	v.SetDefault("kafka.submission_topic", "brightline.submissions")
	v.SetDefault("kafka.submission_group", "brightline-notify")
	v.SetDefault("kafka.consumer.session_timeout", 10)
	v.SetDefault("kafka.consumer.heartbeat_interval", 3)
	v.SetDefault("kafka.consumer.rebalance_timeout", 60)
	v.SetDefault("kafka.consumer.max_processing_time", 30)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_minutes", 720)

	v.SetDefault("notify.timeout_seconds", 10)
	v.SetDefault("notify.discord_webhook_url", "")
	v.SetDefault("notify.slack_webhook_url", "")
	v.SetDefault("notify.zapier_webhook_url", "")
	v.SetDefault("notify.make_webhook_url", "")
	v.SetDefault("notify.email_webhook_url", "")
	v.SetDefault("notify.google_script_url", "")
	v.SetDefault("notify.admin_email", "")
	v.SetDefault("notify.resend_api_key", "")
	v.SetDefault("notify.resend_api_url", "https://api.resend.com/emails")
	v.SetDefault("notify.email_from", "")
	v.SetDefault("notify.email_to", "")

	v.SetDefault("cron.analytics_summary_spec", "@every 10m")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.logstash_address", "")
	v.SetDefault("logging.logstash_index", "logstash-brightline")
}
