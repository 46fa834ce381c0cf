package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Transport selects "stdio" or "http".
	Transport string `yaml:"transport"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// AuthConfig controls how the acting user is resolved. A demo session
// file, when present, takes priority over the configured identity.
type AuthConfig struct {
	DemoSessionPath string `yaml:"demo_session_path"`
	UserID          string `yaml:"user_id"`
	UserName        string `yaml:"user_name"`
	Email           string `yaml:"email"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: "stdio",
		},
		DB: DBConfig{
			Path: "patentdesk.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("PATENTDESK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PATENTDESK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PATENTDESK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PATENTDESK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("PATENTDESK_SERVER_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("PATENTDESK_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PATENTDESK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("PATENTDESK_DEMO_SESSION_PATH"); path != "" {
		cfg.Auth.DemoSessionPath = path
	}
	if userID := os.Getenv("PATENTDESK_USER_ID"); userID != "" {
		cfg.Auth.UserID = userID
	}
	if userName := os.Getenv("PATENTDESK_USER_NAME"); userName != "" {
		cfg.Auth.UserName = userName
	}
	if email := os.Getenv("PATENTDESK_USER_EMAIL"); email != "" {
		cfg.Auth.Email = email
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
