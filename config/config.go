package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"weerdata/weather-dashboard/internal/weather"
)

type Config struct {
	ServiceName   string `validate:"required"`
	ServerAddress string `validate:"required,hostname_port"`

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	GinMode     string `validate:"omitempty,oneof=debug release test"`
	HTTPTimeout int32  `validate:"gte=0"`

	ArchiveAPIURL    string  `validate:"required,url"`
	LocationName     string  `validate:"required"`
	Latitude         float64 `validate:"latitude"`
	Longitude        float64 `validate:"longitude"`
	Timezone         string
	DefaultStartDate string `validate:"required,datetime=2006-01-02"`
	DefaultEndDate   string `validate:"required,datetime=2006-01-02"`
}

// TimezoneResolver looks up the timezone of a coordinate when none is configured.
type TimezoneResolver interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-dashboard")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("ARCHIVE_API_URL", "https://archive-api.open-meteo.com/v1/archive")
	v.SetDefault("LOCATION_NAME", "Hoofddorp")
	v.SetDefault("LATITUDE", 52.3021)
	v.SetDefault("LONGITUDE", 4.6886)
	v.SetDefault("TIMEZONE", "Europe/Amsterdam")
	v.SetDefault("DEFAULT_START_DATE", "2025-04-01")
	v.SetDefault("DEFAULT_END_DATE", "2025-04-20")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		GinMode:          v.GetString("GIN_MODE"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		ArchiveAPIURL:    v.GetString("ARCHIVE_API_URL"),
		LocationName:     v.GetString("LOCATION_NAME"),
		Latitude:         v.GetFloat64("LATITUDE"),
		Longitude:        v.GetFloat64("LONGITUDE"),
		Timezone:         v.GetString("TIMEZONE"),
		DefaultStartDate: v.GetString("DEFAULT_START_DATE"),
		DefaultEndDate:   v.GetString("DEFAULT_END_DATE"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DatabaseEnabled reports whether the run audit log should be written.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// Location builds the immutable location record. The resolver is only
// consulted when no timezone is configured and may be nil otherwise.
func (c *Config) Location(resolver TimezoneResolver) (weather.Location, error) {
	tz := c.Timezone
	if tz == "" {
		if resolver == nil {
			return weather.Location{}, fmt.Errorf("no timezone configured for %s", c.LocationName)
		}
		resolved, err := resolver.GetTimezone(c.Latitude, c.Longitude)
		if err != nil {
			return weather.Location{}, fmt.Errorf("failed to resolve timezone: %w", err)
		}
		log.Info().Str("timezone", resolved).Msg("Timezone resolved from coordinates")
		tz = resolved
	}

	if _, err := time.LoadLocation(tz); err != nil {
		return weather.Location{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return weather.NewLocation(c.LocationName, c.Latitude, c.Longitude, tz), nil
}
