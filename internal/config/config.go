package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	NominatimURL      string        `mapstructure:"NOMINATIM_URL"`
	RestCountriesURL  string        `mapstructure:"REST_COUNTRIES_URL"`
	UserAgent         string        `mapstructure:"USER_AGENT"`
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	LogFormat         string        `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":      ":8080",
	"NOMINATIM_URL":       "https://nominatim.openstreetmap.org/reverse",
	"REST_COUNTRIES_URL":  "https://restcountries.com/v3.1/alpha",
	"USER_AGENT":          "countrymap/1.0",
	"HTTP_CLIENT_TIMEOUT": "0s",
	"DB_SOURCE":           "",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "console",
}

// LoadConfig reads app.env from path, letting environment variables override it.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if config.HTTPClientTimeout < 0 {
		return Config{}, fmt.Errorf("config: HTTP_CLIENT_TIMEOUT must not be negative, got %s", config.HTTPClientTimeout)
	}

	return config, nil
}

// JournalEnabled reports whether a lookup journal database is configured.
func (c Config) JournalEnabled() bool {
	return c.DBSource != ""
}
