package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	FirebaseProject    string `env:"FIREBASE_PROJECT_ID"`
	FirebaseApiKey     string `env:"FIREBASE_API_KEY"`
	ServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH" envDefault:"./smart-agri-firebase-adminsdk.json"`
	StorageBucket      string `env:"STORAGE_BUCKET"`

	WeatherApiKey       string `env:"OPENWEATHER_API_KEY"`
	WeatherBaseURL      string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
	WeatherFallbackCity string `env:"WEATHER_FALLBACK_CITY" envDefault:"Kochi"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	WebSocketOrigins []string `env:"WEBSOCKET_ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.FirebaseProject == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
