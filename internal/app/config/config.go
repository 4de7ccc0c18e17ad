package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr        string `yaml:"http_addr"`
	LogLevel        string `yaml:"log_level"`
	SeedPath        string `yaml:"seed_path"`
	StaticDir       string `yaml:"static_dir"`
	EnforceCapacity bool   `yaml:"enforce_capacity"`
	EventWorkers    int    `yaml:"event_workers"`
}

// Load starts from defaults, applies the YAML file named by CONFIG_PATH if
// any, then environment overrides.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:        ":8080",
		LogLevel:        "info",
		EnforceCapacity: true,
		EventWorkers:    4,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if seed := os.Getenv("SEED_PATH"); seed != "" {
		cfg.SeedPath = seed
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.StaticDir = dir
	}
	if v := os.Getenv("ENFORCE_CAPACITY"); v != "" {
		enforce, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ENFORCE_CAPACITY: %w", err)
		}
		cfg.EnforceCapacity = enforce
	}
	if v := os.Getenv("EVENT_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EVENT_WORKERS: %w", err)
		}
		cfg.EventWorkers = n
	}

	if cfg.EventWorkers <= 0 {
		return Config{}, fmt.Errorf("event_workers must be positive, got %d", cfg.EventWorkers)
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
