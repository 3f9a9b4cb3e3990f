//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for dwdash.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for dwdash.
type Config struct {
	// Connection is the PostgreSQL connection string for the warehouse.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed holds configuration for demo data generation.
	Seed SeedConfig `mapstructure:"seed"`

	// Report holds configuration for report rendering.
	Report ReportConfig `mapstructure:"report"`
}

// SeedConfig holds configuration for demo data generation.
type SeedConfig struct {
	// Customers is the number of customer dimension rows to generate.
	Customers int `mapstructure:"customers"`

	// Employees is the number of employee dimension rows to generate.
	Employees int `mapstructure:"employees"`

	// Orders is the number of fact rows to generate.
	Orders int `mapstructure:"orders"`

	// Years is the span of the date dimension in calendar years,
	// ending with the current year.
	Years int `mapstructure:"years"`

	// RandomSeed makes generation reproducible when non-zero.
	RandomSeed uint64 `mapstructure:"random_seed"`
}

// ReportConfig holds configuration for report rendering.
type ReportConfig struct {
	// TopN is the default cut-off for ranked reports.
	TopN int `mapstructure:"top_n"`

	// Granularity is the default time series bucket
	// (daily, weekly, monthly, quarterly, yearly).
	Granularity string `mapstructure:"granularity"`

	// MaxRows caps the number of detail rows printed per report.
	MaxRows int `mapstructure:"max_rows"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Seed: SeedConfig{
			Customers: 200,
			Employees: 15,
			Orders:    5000,
			Years:     3,
		},
		Report: ReportConfig{
			TopN:        10,
			Granularity: "monthly",
			MaxRows:     100,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./dwdash.yaml
// 3. ~/.config/dwdash/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("dwdash")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "dwdash"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateSeed checks the seed section. Connection requirements are
// checked separately by Validate.
func (c *Config) ValidateSeed() error {
	if c.Seed.Customers < 1 {
		return fmt.Errorf("seed customers must be at least 1")
	}
	if c.Seed.Employees < 1 {
		return fmt.Errorf("seed employees must be at least 1")
	}
	if c.Seed.Orders < 0 {
		return fmt.Errorf("seed orders must be non-negative")
	}
	if c.Seed.Years < 1 || c.Seed.Years > 30 {
		return fmt.Errorf("seed years must be between 1 and 30")
	}
	return nil
}

// ValidateReport checks the report section. Connection requirements
// are checked separately by Validate.
func (c *Config) ValidateReport() error {
	if c.Report.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1")
	}
	if c.Report.MaxRows < 1 {
		return fmt.Errorf("max_rows must be at least 1")
	}
	return nil
}
