package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.Workers <= 0 {
		return errors.New("ingest.workers must be positive")
	}
	if c.Ingest.ThrottleEvery <= 0 {
		return errors.New("ingest.throttle_every must be positive")
	}
	if c.Ingest.ThrottleMillis < 0 {
		return errors.New("ingest.throttle_ms must not be negative")
	}
	if c.Ingest.ProbeTimeoutSeconds <= 0 {
		return errors.New("ingest.probe_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
