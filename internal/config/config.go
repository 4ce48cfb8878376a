package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime knob, loaded from the environment with an
// optional .env file.
type Config struct {
	// Server
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Telegram
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	ControlChatID int64  `mapstructure:"CONTROL_CHAT_ID"`

	// Stats provider
	StatsBaseURL            string        `mapstructure:"NBA_STATS_BASE_URL"`
	ExternalAPITimeout      time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`
	ScoreboardCacheSize     int           `mapstructure:"SCOREBOARD_CACHE_SIZE"`

	// Strategy tuning
	AllowedGap           int `mapstructure:"ALLOWED_GAP"`
	TopGames             int `mapstructure:"TOP_GAMES"`
	PerformanceThreshold int `mapstructure:"PERFORMANCE_THRESHOLD"`

	// Game-day cutoff
	LeagueTimezone string `mapstructure:"LEAGUE_TIMEZONE"`
	CutoffHour     int    `mapstructure:"CUTOFF_HOUR"`

	// Daily digest
	DigestEnabled bool   `mapstructure:"DIGEST_ENABLED"`
	DigestCron    string `mapstructure:"DIGEST_CRON"`
}

// LoadConfig reads configuration from .env and the environment.
func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("TELEGRAM_TOKEN", "")
	viper.SetDefault("CONTROL_CHAT_ID", 0)
	viper.SetDefault("NBA_STATS_BASE_URL", "https://stats.nba.com/stats")
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "10s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("SCOREBOARD_CACHE_SIZE", 5)
	viper.SetDefault("ALLOWED_GAP", 6)
	viper.SetDefault("TOP_GAMES", 2)
	viper.SetDefault("PERFORMANCE_THRESHOLD", 37)
	viper.SetDefault("LEAGUE_TIMEZONE", "America/New_York")
	viper.SetDefault("CUTOFF_HOUR", 22)
	viper.SetDefault("DIGEST_ENABLED", false)
	viper.SetDefault("DIGEST_CRON", "0 9 * * *")

	viper.AutomaticEnv()

	// A missing .env file is fine; the environment still applies.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// BotEnabled reports whether the Telegram bot should start.
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}
