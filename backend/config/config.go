package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName        string `mapstructure:"app_name"`
	ServerPort     string `mapstructure:"server_port"`
	DataCSV        string `mapstructure:"data_csv"`
	UsersXML       string `mapstructure:"users_xml"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	AllowedOrigins string `mapstructure:"cors_allowed_origins"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

var defaults = map[string]interface{}{
	"app_name":             "Presence Analyzer",
	"server_port":          "8080",
	"data_csv":             "runtime/data/sample_data.csv",
	"users_xml":            "runtime/data/users_data.xml",
	"log_level":            "info",
	"log_format":           "console",
	"cors_allowed_origins": "*",
	"metrics_enabled":      true,
}

// LoadConfig reads .env, an optional config.yaml and the environment, in
// increasing order of precedence.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}

	if c.DataCSV == "" {
		return errors.New("DATA_CSV must be set")
	}
	return nil
}
