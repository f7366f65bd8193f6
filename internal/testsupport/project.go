package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"noa/internal/config"
)

// SeedProject lays out a minimal valid project workspace (services directory
// plus compose file) under the config's project dir.
func SeedProject(t testing.TB, cfg *config.Config) {
	t.Helper()

	if err := os.MkdirAll(cfg.ServicesDir(), 0o755); err != nil {
		t.Fatalf("create services dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.Paths.ProjectDir, "tests"), 0o755); err != nil {
		t.Fatalf("create tests dir: %v", err)
	}
	compose := "services: {}\n"
	if err := os.WriteFile(cfg.ComposePath(), []byte(compose), 0o644); err != nil {
		t.Fatalf("write compose file: %v", err)
	}
}
