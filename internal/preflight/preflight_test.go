package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"noa/internal/preflight"
	"noa/internal/testsupport"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	if res := preflight.CheckDirectoryAccess("dir", dir); !res.Passed {
		t.Fatalf("expected pass for %s, got %+v", dir, res)
	}
	if res := preflight.CheckDirectoryAccess("dir", filepath.Join(dir, "missing")); res.Passed {
		t.Fatalf("expected failure for missing directory, got %+v", res)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if res := preflight.CheckDirectoryAccess("dir", file); res.Passed {
		t.Fatalf("expected failure for non-directory, got %+v", res)
	}
}

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "compose.yml")
	if err := os.WriteFile(file, []byte("services: {}\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if res := preflight.CheckFileExists("compose", file); !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
	if res := preflight.CheckFileExists("compose", filepath.Join(dir, "absent.yml")); res.Passed {
		t.Fatalf("expected failure for absent file, got %+v", res)
	}
	if res := preflight.CheckFileExists("compose", dir); res.Passed {
		t.Fatalf("expected failure for directory, got %+v", res)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	testsupport.SeedProject(t, cfg)

	results := preflight.RunAll(cfg)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if !preflight.AllPassed(results) {
		t.Fatalf("expected all checks to pass, got %+v", results)
	}

	if err := os.RemoveAll(cfg.Paths.WorkspaceDir); err != nil {
		t.Fatalf("remove workspace dir: %v", err)
	}
	results = preflight.RunAll(cfg)
	if preflight.AllPassed(results) {
		t.Fatal("expected workspace check to fail after removal")
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := preflight.RunAll(nil); results != nil {
		t.Fatalf("expected nil results, got %+v", results)
	}
}
