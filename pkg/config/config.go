package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream aggregate API
	AggregateAPIURL   string
	AggregateAPIToken string

	// Local sqlite rate cache; empty disables caching
	CacheDBPath string

	// AMQP refresh notifications; empty URL disables the subscriber
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Rate limit in ulule/limiter format, e.g. "100-M"
	RateLimit string

	AnchorCurrency string

	// Pay day substituted when the customer profile omits one
	DefaultDayOfMonthPaid int

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("AGGREGATE_API_URL", "")
	viper.SetDefault("AGGREGATE_API_TOKEN", "")
	viper.SetDefault("CACHE_DB_PATH", "")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "fynlens")
	viper.SetDefault("AMQP_QUEUE", "aggregate-refresh")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ANCHOR_CURRENCY", "USD")
	viper.SetDefault("DEFAULT_DAY_OF_MONTH_PAID", 1)
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AggregateAPIURL = viper.GetString("AGGREGATE_API_URL")
	if cfg.AggregateAPIURL == "" {
		log.Println("Warning: AGGREGATE_API_URL environment variable not set.")
	}
	cfg.AggregateAPIToken = viper.GetString("AGGREGATE_API_TOKEN")
	if cfg.AggregateAPIToken == "" {
		log.Println("Warning: AGGREGATE_API_TOKEN environment variable not set.")
	}

	cfg.CacheDBPath = viper.GetString("CACHE_DB_PATH")
	if cfg.CacheDBPath == "" {
		log.Println("Warning: CACHE_DB_PATH not set. Exchange rate caching disabled.")
	}

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPQueue = viper.GetString("AMQP_QUEUE")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AnchorCurrency = viper.GetString("ANCHOR_CURRENCY")
	cfg.DefaultDayOfMonthPaid = viper.GetInt("DEFAULT_DAY_OF_MONTH_PAID")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
