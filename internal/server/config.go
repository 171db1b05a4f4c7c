package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the judge service configuration
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Judge  *JudgeSettings  `hcl:"judge,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// JudgeSettings bounds individual judge requests
type JudgeSettings struct {
	MaxHands           int `hcl:"max_hands,optional"`
	IdleTimeoutSeconds int `hcl:"idle_timeout_seconds,optional"`
}

// DefaultConfig returns the default service configuration
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Judge: &JudgeSettings{
			MaxHands:           64,
			IdleTimeoutSeconds: 300,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := DefaultConfig()
	if config.Server == nil {
		config.Server = defaults.Server
	}
	if config.Judge == nil {
		config.Judge = defaults.Judge
	}
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Judge.MaxHands == 0 {
		config.Judge.MaxHands = defaults.Judge.MaxHands
	}
	if config.Judge.IdleTimeoutSeconds == 0 {
		config.Judge.IdleTimeoutSeconds = defaults.Judge.IdleTimeoutSeconds
	}

	return &config, nil
}

// Validate validates the service configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if c.Judge.MaxHands < 1 {
		return fmt.Errorf("max_hands must be positive, got %d", c.Judge.MaxHands)
	}
	if c.Judge.IdleTimeoutSeconds < 1 {
		return fmt.Errorf("idle_timeout_seconds must be positive, got %d", c.Judge.IdleTimeoutSeconds)
	}

	return nil
}

// Addr returns the full listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
