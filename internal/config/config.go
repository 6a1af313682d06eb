package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Worker    WorkerConfig
	Logging   LoggingConfig
	EventBus  EventBusConfig
	Storage   StorageConfig
	Export    ExportConfig
	Retention RetentionConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
	BodyLimit       string
}

type WorkerConfig struct {
	PoolSize       int
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type StorageConfig struct {
	Driver     string
	SQLitePath string
}

type ExportConfig struct {
	DefaultSchema string
	CacheTTL      time.Duration
}

type RetentionConfig struct {
	Schedule string
	MaxAge   time.Duration
}

const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
			BodyLimit:       getEnv("SERVER_BODY_LIMIT", "50M"),
		},
		Worker: WorkerConfig{
			PoolSize:       getIntEnv("WORKER_POOL_SIZE", 10),
			MaxRetries:     getIntEnv("MAX_RETRIES", 5),
			RetryBaseDelay: getDurationEnv("RETRY_BASE_DELAY", time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", StorageDriverMemory),
			SQLitePath: getEnv("SQLITE_PATH", "taxbit.db"),
		},
		Export: ExportConfig{
			DefaultSchema: getEnv("DEFAULT_SCHEMA", "extended"),
			CacheTTL:      getDurationEnv("EXPORT_CACHE_TTL", 15*time.Minute),
		},
		Retention: RetentionConfig{
			Schedule: getEnv("RETENTION_SCHEDULE", "@hourly"),
			MaxAge:   getDurationEnv("RETENTION_MAX_AGE", 24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
