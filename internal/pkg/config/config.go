package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Email     EmailConfig     `mapstructure:"email"`
	Outbox    OutboxConfig    `mapstructure:"outbox"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	TokenExpireDays int    `mapstructure:"token_expire_days"` // 天, 默认7
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// OutboxConfig 副作用队列配置
type OutboxConfig struct {
	Workers      int           `mapstructure:"workers"`       // 消费协程数, 默认1
	QueueSize    int           `mapstructure:"queue_size"`    // 队列长度, 默认256
	RetryCount   int           `mapstructure:"retry_count"`   // 失败重试次数, 0表示不重试
	RetryBackoff time.Duration `mapstructure:"retry_backoff"` // 重试间隔, 如 5s
}

// SchedulerConfig 定时任务配置
type SchedulerConfig struct {
	SessionPurgeCron string `mapstructure:"session_purge_cron"` // 过期会话清理
	DueReminderCron  string `mapstructure:"due_reminder_cron"`  // 到期任务提醒
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 设置配置文件路径
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// 读取环境变量
	v.AutomaticEnv()

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解析配置
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// 设置全局配置
	GlobalConfig = config

	return config, nil
}

// Validate 校验启动必需项: 数据库连接与Token签名密钥缺失直接失败
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.Database == "" {
		return fmt.Errorf("缺少数据库配置 database.host / database.database")
	}
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("缺少Token签名密钥 auth.jwt.secret")
	}
	if c.Auth.JWT.TokenExpireDays <= 0 {
		c.Auth.JWT.TokenExpireDays = 7
	}
	if c.Outbox.Workers <= 0 {
		c.Outbox.Workers = 1
	}
	if c.Outbox.QueueSize <= 0 {
		c.Outbox.QueueSize = 256
	}
	if c.Outbox.RetryCount < 0 {
		c.Outbox.RetryCount = 0
	}
	if c.Outbox.RetryBackoff <= 0 {
		c.Outbox.RetryBackoff = 5 * time.Second
	}
	return nil
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
