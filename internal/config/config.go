package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int64  `yaml:"ttl_hours"`
	} `yaml:"jwt"`
	RateLimit struct {
		LoginPerMinute int `yaml:"login_per_minute"`
		LoginBurst     int `yaml:"login_burst"`
	} `yaml:"rate_limit"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret must be set")
	}
	if config.JWT.TTLHours <= 0 {
		config.JWT.TTLHours = 24 * 7
	}
	if config.RateLimit.LoginPerMinute <= 0 {
		config.RateLimit.LoginPerMinute = 10
	}
	if config.RateLimit.LoginBurst <= 0 {
		config.RateLimit.LoginBurst = 5
	}

	return config, nil
}
