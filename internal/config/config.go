package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config 服务启动所需的全部配置
type Config struct {
	HTTPAddr        string
	GinMode         string
	LogLevel        string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	DB     DatabaseConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Outbox OutboxConfig
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	Seed         bool
}

// RedisConfig Addr 为空时使用进程内锁
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// KafkaConfig Brokers 为空时不写 outbox
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type OutboxConfig struct {
	BatchSize int
	Interval  time.Duration
	MaxRetry  int
}

// Enabled 是否投递动态事件
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Load 读取 .env（可选）和环境变量
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv 只从进程环境变量构造配置
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigins:     getEnvAsList("CORS_ORIGINS", []string{"*"}),
		DB: DatabaseConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			DSN:          getEnv("DB_DSN", "social.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 5*time.Minute),
			Seed:         getEnvAsBool("DB_SEED", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			LockTTL:  getEnvAsDuration("LOCK_TTL", 5*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsList("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC", "social.activity"),
		},
		Outbox: OutboxConfig{
			BatchSize: getEnvAsInt("OUTBOX_BATCH_SIZE", 200),
			Interval:  getEnvAsDuration("OUTBOX_INTERVAL", time.Second),
			MaxRetry:  getEnvAsInt("OUTBOX_MAX_RETRY", 5),
		},
	}

	switch cfg.DB.Driver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, mysql or postgres)", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("database dsn is required (set DB_DSN)")
	}
	if cfg.Kafka.Enabled() && cfg.Kafka.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required when KAFKA_BROKERS is set")
	}
	return cfg, nil
}

// getEnv 读取环境变量，为空时返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList 逗号分隔，忽略空项
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
