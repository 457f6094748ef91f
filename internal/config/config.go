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
	Seed   SeedConfig   `yaml:"seed"`
	MCP    MCPConfig    `yaml:"mcp"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SeedConfig struct {
	// OnStart loads the fixture dataset at startup when the store is empty.
	OnStart bool `yaml:"on_start"`
}

type MCPConfig struct {
	// Enabled mounts the MCP tool endpoint at /mcp.
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "pipecrm.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Seed: SeedConfig{
			OnStart: true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
	}

	if path := os.Getenv("PIPECRM_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PIPECRM_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PIPECRM_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PIPECRM_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("PIPECRM_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PIPECRM_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if seedStr := os.Getenv("PIPECRM_SEED_ON_START"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PIPECRM_SEED_ON_START: %w", err)
		}
		cfg.Seed.OnStart = seed
	}
	if mcpStr := os.Getenv("PIPECRM_MCP_ENABLED"); mcpStr != "" {
		enabled, err := strconv.ParseBool(mcpStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PIPECRM_MCP_ENABLED: %w", err)
		}
		cfg.MCP.Enabled = enabled
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
