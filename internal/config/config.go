// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port     int `mapstructure:"port"`
	Database struct {
		Driver string `mapstructure:"driver"` // "sqlite" or "memory"
		Path   string `mapstructure:"path"`
	} `mapstructure:"database"`
	TMDB struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"tmdb"`
	Anilist struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"anilist"`
	// AiringCheckInterval is how often, in minutes, the airing-check job
	// runs. 0 disables it.
	AiringCheckInterval int `mapstructure:"airing_check_interval"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")

	// --- Environment Variable Overrides ---
	// e.g. MEDIATRACK_TMDB_API_KEY overrides the `tmdb.api_key` key.
	viper.SetEnvPrefix("MEDIATRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 8080)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./mediatrack.db")
	viper.SetDefault("tmdb.api_key", "")
	viper.SetDefault("tmdb.base_url", "")
	viper.SetDefault("anilist.base_url", "")
	viper.SetDefault("airing_check_interval", 360)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
