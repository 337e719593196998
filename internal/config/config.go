package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	LogLevel    string
}

// Load reads configuration from an optional .env file and the process
// environment. Environment variables win over file values.
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	// .env is optional; env vars alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Config{
		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENVIRONMENT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
	}, nil
}
