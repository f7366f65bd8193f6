package testsupport

import (
	"path/filepath"
	"testing"

	"noa/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ProjectDir = filepath.Join(base, "project")
	cfg.Paths.WorkspaceDir = filepath.Join(base, "workspaces")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithModulePrefix overrides the generator module prefix on the test config.
func WithModulePrefix(prefix string) ConfigOption {
	return func(c *config.Config) {
		c.Generator.ModulePrefix = prefix
	}
}

// WithServicePort overrides the generated service port on the test config.
func WithServicePort(port int) ConfigOption {
	return func(c *config.Config) {
		c.Generator.ServicePort = port
	}
}
