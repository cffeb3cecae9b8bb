// Package config loads the server configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is absent from the file and environment.
const (
	DefaultListenAddr   = ":8080"
	DefaultLogLevel     = "info"
	DefaultMaxNodes     = 10000
	DefaultMaxEdges     = 50000
	DefaultMaxBodyBytes = 4 << 20
)

// Config is the server configuration.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// MaxNodes caps the node count of a submitted graph.
	MaxNodes int `yaml:"max_nodes"`
	// MaxEdges caps the edge count of a submitted graph.
	MaxEdges int `yaml:"max_edges"`
	// MaxBodyBytes caps the size of an HTTP request body.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// Default returns a config populated with defaults.
func Default() *Config {
	return &Config{
		ListenAddr:   DefaultListenAddr,
		LogLevel:     DefaultLogLevel,
		MaxNodes:     DefaultMaxNodes,
		MaxEdges:     DefaultMaxEdges,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Load reads a YAML config file, fills in defaults, applies environment
// overrides, and validates the result. An empty path skips the file and
// uses defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
// PATHRACE_LISTEN_ADDR, LOG_LEVEL, PATHRACE_MAX_NODES, PATHRACE_MAX_EDGES.
func (c *Config) applyEnv() {
	if addr := os.Getenv("PATHRACE_LISTEN_ADDR"); addr != "" {
		c.ListenAddr = addr
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if v := os.Getenv("PATHRACE_MAX_NODES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxNodes = n
		}
	}
	if v := os.Getenv("PATHRACE_MAX_EDGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxEdges = n
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("config.listen_addr: required field is empty")
	}
	if c.MaxNodes < 1 {
		return fmt.Errorf("config.max_nodes: value %d is below minimum 1", c.MaxNodes)
	}
	if c.MaxEdges < 1 {
		return fmt.Errorf("config.max_edges: value %d is below minimum 1", c.MaxEdges)
	}
	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("config.max_body_bytes: value %d is below minimum 1", c.MaxBodyBytes)
	}
	return nil
}
