package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	PostgresURL string `mapstructure:"POSTGRES_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// LiteAPI hotel inventory.
	LiteAPIKey          string `mapstructure:"LITEAPI_KEY"`
	LiteAPIBaseURL      string `mapstructure:"LITEAPI_BASE_URL"`
	LiteAPIBookBaseURL  string `mapstructure:"LITEAPI_BOOK_BASE_URL"`
	LiteAPIWebhookToken string `mapstructure:"LITEAPI_WEBHOOK_TOKEN"`

	// Amadeus flight GDS.
	AmadeusAPIKey    string `mapstructure:"AMADEUS_API_KEY"`
	AmadeusAPISecret string `mapstructure:"AMADEUS_API_SECRET"`
	AmadeusBaseURL   string `mapstructure:"AMADEUS_BASE_URL"`

	// Google Places API (New).
	GooglePlacesAPIKey string `mapstructure:"GOOGLE_PLACES_API_KEY"`

	// Itinerary composer. OpenRouter speaks the OpenAI chat-completions
	// protocol; Gemini is the fallback when no OpenRouter key is set.
	OpenRouterAPIKey  string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string `mapstructure:"OPENROUTER_BASE_URL"`
	OpenRouterModel   string `mapstructure:"OPENROUTER_MODEL"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string `mapstructure:"GEMINI_MODEL"`
	AppReferer        string `mapstructure:"APP_REFERER"`
}

func LoadConfig() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LITEAPI_BASE_URL", "https://api.liteapi.travel/v3.0")
	viper.SetDefault("LITEAPI_BOOK_BASE_URL", "https://book.liteapi.travel/v3.0")
	viper.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("OPENROUTER_MODEL", "anthropic/claude-3.5-sonnet")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("APP_REFERER", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
