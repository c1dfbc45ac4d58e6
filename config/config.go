package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	DB        Database  `mapstructure:"database"`
	API       API       `mapstructure:"api"`
	Cache     Cache     `mapstructure:"cache"`
	Journal   Journal   `mapstructure:"journal"`
	Scheduler Scheduler `mapstructure:"scheduler"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port           int           `mapstructure:"port"`
	RateLimit      float64       `mapstructure:"rate_limit"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	RateLimitTTL   time.Duration `mapstructure:"rate_limit_ttl"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	StatsExpiration   time.Duration `mapstructure:"stats_expiration"`
}

// Journal holds knobs for the journaling domain itself.
type Journal struct {
	// DailySeriesDays is the width of the daily P&L bar window.
	DailySeriesDays int `mapstructure:"daily_series_days"`
	// TimeZone is the local calendar used for "today", week and month
	// boundaries. Empty means the process-local zone.
	TimeZone string `mapstructure:"time_zone"`
}

type Scheduler struct {
	// DayResetSpec is the cron spec for the start-of-day sweep that resets
	// risk-alert monitors and recomputes stale trading days.
	DayResetSpec    string        `mapstructure:"day_reset_spec"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine, env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.rate_limit", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("api.rate_limit_ttl", "3m")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("cache.default_expiration", "5m")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.stats_expiration", "30s")
	viper.SetDefault("journal.daily_series_days", 30)
	viper.SetDefault("scheduler.day_reset_spec", "5 0 * * *")
	viper.SetDefault("scheduler.timeout_duration", "2m")
}
