/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads application settings from an optional YAML file,
// then applies WREN_* environment overrides, then validates the result.
// A .env file, when present, is loaded into the environment by the caller
// before Load runs.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tomoncle/wren/database"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "wren"

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"SERVER_HOST"`
	Port            int           `yaml:"port" envconfig:"SERVER_PORT" validate:"min=1,max=65535"`
	BasePath        string        `yaml:"base_path" envconfig:"SERVER_BASE_PATH"`
	CORSOrigins     []string      `yaml:"cors_origins" envconfig:"SERVER_CORS_ORIGINS"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`
}

// LoggingConfig holds the structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT" validate:"oneof=console json"`
}

// Config aggregates all application settings.
type Config struct {
	ProjectName string          `yaml:"project_name" envconfig:"PROJECT_NAME"`
	Environment string          `yaml:"environment" envconfig:"ENVIRONMENT" validate:"oneof=development staging production"`
	Server      ServerConfig    `yaml:"server"`
	Logging     LoggingConfig   `yaml:"logging"`
	Database    database.Config `yaml:"database"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		ProjectName: "wren",
		Environment: "development",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			BasePath:        "/api/v1",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Database: database.Config{
			ConnectionConfig: *database.DefaultConnectionConfig(),
			TableInitConfig:  database.TableInitConfig{CreateTablesOnStartup: true},
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides, and validates the merged configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
