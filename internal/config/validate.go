package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGenerator(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGenerator() error {
	if c.Generator.ServicePort < 1 || c.Generator.ServicePort > 65535 {
		return fmt.Errorf("generator.service_port: %d is outside 1-65535", c.Generator.ServicePort)
	}
	for _, endpoint := range c.Generator.DefaultEndpoints {
		if !strings.HasPrefix(endpoint, "/") {
			return fmt.Errorf("generator.default_endpoints: %q must start with /", endpoint)
		}
	}
	if strings.ContainsAny(c.Generator.ModulePrefix, " \t") {
		return fmt.Errorf("generator.module_prefix: %q must not contain whitespace", c.Generator.ModulePrefix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
