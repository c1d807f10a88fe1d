package config

// Config 配置主体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Redis   RedisConfig   `mapstructure:"redis"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Cron    CronConfig    `mapstructure:"cron"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	ServiceName    string   `mapstructure:"service_name"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DBConfig 关系型数据库配置 (contacts / bookings)
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// MongoConfig 文档库配置 (blog_posts / blog_analytics)
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig 封面图存储配置，Endpoint 为空时不启用上传
type MinIOConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	PublicEndpoint string `mapstructure:"public_endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	Bucket         string `mapstructure:"bucket"`
	UseSSL         bool   `mapstructure:"use_ssl"`
	MaxWidth       int    `mapstructure:"max_width"`
}

type KafkaConfig struct {
	Enable          bool           `mapstructure:"enable"`
	Brokers         []string       `mapstructure:"brokers"`
	Sasl            SaslConfig     `mapstructure:"sasl"`
	Consumer        ConsumerConfig `mapstructure:"consumer"`
	SubmissionTopic string         `mapstructure:"submission_topic"`
	SubmissionGroup string         `mapstructure:"submission_group"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// AuthConfig 后台登录配置
type AuthConfig struct {
	JWTSecret       string      `mapstructure:"jwt_secret"`
	TokenTTLMinutes int         `mapstructure:"token_ttl_minutes"`
	Admins          []AdminUser `mapstructure:"admins"`
}

// AdminUser 后台账号，密码为 bcrypt 哈希
type AdminUser struct {
	UID          string `mapstructure:"uid"`
	Email        string `mapstructure:"email"`
	DisplayName  string `mapstructure:"display_name"`
	PasswordHash string `mapstructure:"password_hash"`
}

// NotifyConfig 通知渠道配置，地址为空即跳过该渠道
type NotifyConfig struct {
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"`
	DiscordWebhookURL string `mapstructure:"discord_webhook_url"`
	SlackWebhookURL   string `mapstructure:"slack_webhook_url"`
	ZapierWebhookURL  string `mapstructure:"zapier_webhook_url"`
	MakeWebhookURL    string `mapstructure:"make_webhook_url"`
	EmailWebhookURL   string `mapstructure:"email_webhook_url"`
	GoogleScriptURL   string `mapstructure:"google_script_url"`
	AdminEmail        string `mapstructure:"admin_email"`
	ResendAPIKey      string `mapstructure:"resend_api_key"`
	ResendAPIURL      string `mapstructure:"resend_api_url"`
	EmailFrom         string `mapstructure:"email_from"`
	EmailTo           string `mapstructure:"email_to"`
}

// CronConfig 定时任务配置
type CronConfig struct {
	AnalyticsSummarySpec string `mapstructure:"analytics_summary_spec"`
}

// LoggingConfig 日志配置，LogstashAddress 为空时只输出到 stdout
type LoggingConfig struct {
	Level           string `mapstructure:"level"`
	LogstashAddress string `mapstructure:"logstash_address"`
	LogstashIndex   string `mapstructure:"logstash_index"`
}
