/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads registry settings from a .env file, an optional YAML file
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

// Config selects and configures the registry backend.
type Config struct {
	Backend  string         `yaml:"backend" env:"REGISTRY_BACKEND"`
	LogLevel string         `yaml:"logLevel" env:"REGISTRY_LOG_LEVEL"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
}

// SQLiteConfig configures the sqlite backend.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"REGISTRY_SQLITE_PATH"`
}

// DynamoDBConfig configures the dynamodb backend.
type DynamoDBConfig struct {
	AccessKey string `yaml:"accessKey" env:"AWS_ACCESS_KEY"`
	SecretKey string `yaml:"secretKey" env:"AWS_SECRET_KEY"`
	Region    string `yaml:"region" env:"AWS_REGION"`
	Table     string `yaml:"table" env:"AWS_DDB_TABLE"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Backend:  BackendMemory,
		LogLevel: "info",
		SQLite:   SQLiteConfig{Path: "registry.db"},
	}
}

// Load reads .env from the working directory if present, then the YAML file at
// path (skipped when path is empty), then environment variables.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected backend is fully configured.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("config: sqlite backend requires sqlite.path")
		}
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return fmt.Errorf("config: dynamodb backend requires dynamodb.table")
		}
		if c.DynamoDB.Region == "" {
			return fmt.Errorf("config: dynamodb backend requires dynamodb.region")
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	return nil
}
