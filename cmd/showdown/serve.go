package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/showdown/internal/server"
)

// ServeCmd runs the WebSocket judge service
type ServeCmd struct {
	Config string `short:"c" help:"Path to HCL config file" default:"showdown.hcl"`
	Addr   string `help:"Override the configured listen address (host:port)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	if c.Addr != "" {
		host, portStr, err := net.SplitHostPort(c.Addr)
		if err != nil {
			return fmt.Errorf("invalid --addr: %w", err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid --addr port: %w", err)
		}
		cfg.Server.Address = host
		cfg.Server.Port = port
	}
	if c.Debug {
		cfg.Server.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "showdown",
	})
	level, err := log.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	srv := server.New(cfg, logger, quartz.NewReal())
	return srv.ListenAndServe()
}
