package config

import (
	"fmt"
	"strings"
	"sync"

	"planner-api/core/constants"
	"planner-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// CacheTTLSeconds bounds staleness of cached day queries.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type AuthConfig struct {
	Username string `mapstructure:"username"`
	// PasswordHash is a bcrypt hash of the single user's password.
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	TokenTTLMin  int    `mapstructure:"token_ttl_minutes"`
}

type ScheduleConfig struct {
	// Driver selects the event store backend: "postgres" or "memory".
	Driver string `mapstructure:"driver"`
	// WindowStart/WindowEnd bound the schedulable day, as "HH:MM". WindowEnd
	// "00:00" means end of day (24:00).
	WindowStart string `mapstructure:"window_start"`
	WindowEnd   string `mapstructure:"window_end"`
	// WrapEqualTimes treats startTime == endTime as a full 24h event instead
	// of a zero-length one.
	WrapEqualTimes bool `mapstructure:"wrap_equal_times"`
}

type BackupConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	// Cron is the asynq periodic schedule for automatic exports.
	Cron string `mapstructure:"cron"`
}

type QueueConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	Concurrency int  `mapstructure:"concurrency"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Log      LogConfig      `mapstructure:"log"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads config.yaml (optional) plus environment variables prefixed with
// PLANNER_ (dots become underscores), after overlaying a local .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("Config:Load:NoDotEnv", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Info("Config:Load:NoConfigFile, using env and defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "planner")
	v.SetDefault("database.dbname", "planner")
	v.SetDefault("database.sslmode", constants.DatabaseSSLMode)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.cache_ttl_seconds", 300)

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.token_ttl_minutes", 60*24)

	v.SetDefault("schedule.driver", constants.StoreDriverPostgres)
	v.SetDefault("schedule.window_start", "00:00")
	v.SetDefault("schedule.window_end", "00:00")
	v.SetDefault("schedule.wrap_equal_times", false)

	v.SetDefault("backup.enabled", false)
	v.SetDefault("backup.region", "ap-southeast-1")
	v.SetDefault("backup.cron", "0 3 * * *")

	v.SetDefault("queue.enabled", false)
	v.SetDefault("queue.concurrency", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Get returns the loaded config; panics if Load was never called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// GetSafe returns the loaded config and whether it has been initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set replaces the global config. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
