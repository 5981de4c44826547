package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	pkgerrors "github.com/IT22898920/GYM-App-sub004/pkg/errors"
)

// Config is the whole service configuration tree.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	JWT      JWTConfig      `yaml:"jwt"`
}

// LoadConfig reads the YAML config named by CONFIG_PATH. A .env file in
// the working directory is loaded first so the YAML can reference
// secrets via environment expansion.
func LoadConfig() (*Config, error) {
	// Missing .env is fine outside development.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/gym.yaml"
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read config file")
	}

	expanded := os.Expand(string(data), os.Getenv)

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}
