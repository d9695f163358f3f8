// Package config loads the bot configuration once at startup. Values come from defaults, an optional config.toml,
// a .env file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string         `mapstructure:"log_level"  validate:"oneof=debug info warn error"`
	LogFormat string         `mapstructure:"log_format" validate:"oneof=json console"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
	Handler   HandlerConfig  `mapstructure:"handler"`
	Weather   WeatherConfig  `mapstructure:"weather"`
	Joke      JokeConfig     `mapstructure:"joke"`
	News      NewsConfig     `mapstructure:"news"`
	Metrics   MetricsConfig  `mapstructure:"metrics"`
}

type TelegramConfig struct {
	Token       string        `mapstructure:"token"        validate:"required"`
	PollTimeout time.Duration `mapstructure:"poll_timeout" validate:"min=1s"`
}

type HandlerConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1s"`
}

type WeatherConfig struct {
	APIKey        string        `mapstructure:"api_key"        validate:"required"`
	BaseURL       string        `mapstructure:"base_url"       validate:"url"`
	Language      string        `mapstructure:"language"       validate:"required"`
	Timeout       time.Duration `mapstructure:"timeout"        validate:"min=1ms"`
	RetryAttempts int           `mapstructure:"retry_attempts" validate:"min=1,max=10"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"    validate:"min=0"`
}

type JokeConfig struct {
	BaseURL  string        `mapstructure:"base_url" validate:"url"`
	Category string        `mapstructure:"category" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout"  validate:"min=1ms"`
}

type NewsConfig struct {
	APIKey  string        `mapstructure:"api_key"  validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"url"`
	Query   string        `mapstructure:"query"    validate:"required"`
	Timeout time.Duration `mapstructure:"timeout"  validate:"min=1ms"`
}

type MetricsConfig struct {
	Address string `mapstructure:"address" validate:"omitempty,hostname_port"`
}

// Keys bound to explicit environment variable names. Unmarshal only sees env values for bound or defaulted keys.
var envBindings = map[string]string{
	"telegram.token":  "TELEGRAM_TOKEN",
	"weather.api_key": "WEATHER_API_KEY",
	"news.api_key":    "NEWS_API_KEY",
	"log_level":       "LOG_LEVEL",
	"log_format":      "LOG_FORMAT",
	"metrics.address": "METRICS_ADDRESS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("telegram.poll_timeout", "30s")
	v.SetDefault("handler.timeout", "1m")

	v.SetDefault("weather.base_url", "http://api.weatherapi.com/v1")
	v.SetDefault("weather.language", "fa")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("weather.retry_attempts", 3)
	v.SetDefault("weather.retry_delay", "2s")

	v.SetDefault("joke.base_url", "https://v2.jokeapi.dev")
	v.SetDefault("joke.category", "Any")
	v.SetDefault("joke.timeout", "10s")

	v.SetDefault("news.base_url", "https://newsapi.org/v2")
	v.SetDefault("news.query", "AI OR programming")
	v.SetDefault("news.timeout", "10s")

	v.SetDefault("metrics.address", "")
}

// Load reads config.toml from dir if present, merges the environment over it and validates the result.
// A missing required secret is an error.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Info().Str("dir", dir).Msg("no config file found, using defaults and environment")
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("read config file")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
