// Package config provides configuration loading for routefsm.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/routefsm/internal/logging"
)

// envPrefix namespaces routefsm environment variables.
const envPrefix = "ROUTEFSM_"

// Config is the root configuration for the CLI and the serve mode.
type Config struct {
	Logging  logging.Config `koanf:"logging"`
	Server   ServerConfig   `koanf:"server"`
	Template TemplateConfig `koanf:"template"`
}

// ServerConfig holds the serve-mode listen address.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// TemplateConfig selects the extraction template.
type TemplateConfig struct {
	// Path overrides the embedded cisco_ios_show_ip_route grammar.
	Path string `koanf:"path"`
}

// Load reads configuration with precedence defaults < YAML file < environment.
//
// The configPath parameter names the optional YAML file; an empty path skips
// the file layer entirely. Environment variables use the ROUTEFSM_ prefix
// with an underscore split on the first section boundary:
//
//	ROUTEFSM_SERVER_PORT    -> server.port
//	ROUTEFSM_LOGGING_LEVEL  -> logging.level
//	ROUTEFSM_TEMPLATE_PATH  -> template.path
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// ROUTEFSM_SERVER_PORT -> server.port: drop the prefix, split once
		// on the section boundary, keep underscores inside field names.
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: logging.NewDefaultConfig(),
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}

// Validate checks field-level constraints.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	return nil
}
