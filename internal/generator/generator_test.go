package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"noa/internal/logging"
	"noa/internal/services"
	"noa/internal/testsupport"
)

func TestExecuteScaffoldsService(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithModulePrefix("example.com/services"))
	testsupport.SeedProject(t, cfg)
	store := testsupport.MustOpenLedger(t, cfg)

	gen := New(cfg, logging.NewNop(), store)
	result, err := gen.Execute(context.Background(), map[string]any{"service_name": "graph-extract"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	serviceDir := filepath.Join(cfg.ServicesDir(), "graph-extract")
	for _, name := range []string{"main.go", "main_test.go", "go.mod", "Dockerfile"} {
		if _, err := os.Stat(filepath.Join(serviceDir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if len(result.Files) != 5 {
		t.Errorf("expected 5 files in result, got %d: %v", len(result.Files), result.Files)
	}
	if len(result.NextSteps) == 0 {
		t.Error("expected next steps in result")
	}

	mainSrc, err := os.ReadFile(filepath.Join(serviceDir, "main.go"))
	if err != nil {
		t.Fatalf("read main.go: %v", err)
	}
	for _, want := range []string{
		`const serviceName = "graph-extract"`,
		"func handleRoot(",
		"func handleHealth(",
		"func handleProcess(",
		"Graph Extract Service",
	} {
		if !strings.Contains(string(mainSrc), want) {
			t.Errorf("main.go missing %q", want)
		}
	}

	goMod, err := os.ReadFile(filepath.Join(serviceDir, "go.mod"))
	if err != nil {
		t.Fatalf("read go.mod: %v", err)
	}
	if !strings.Contains(string(goMod), "module example.com/services/graph-extract") {
		t.Errorf("unexpected go.mod contents: %s", goMod)
	}

	compose, err := os.ReadFile(cfg.ComposePath())
	if err != nil {
		t.Fatalf("read compose file: %v", err)
	}
	if !strings.Contains(string(compose), "graph-extract") {
		t.Errorf("compose file not updated: %s", compose)
	}

	events, err := store.ListAgentEvents(context.Background(), AgentName, 0)
	if err != nil {
		t.Fatalf("list agent events: %v", err)
	}
	actions := make([]string, 0, len(events))
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	for _, want := range []string{"start_service_generation", "created_directory", "service_generated"} {
		found := false
		for _, action := range actions {
			if action == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q event, got %v", want, actions)
		}
	}
}

func TestExecuteRejectsDuplicateService(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.SeedProject(t, cfg)

	gen := New(cfg, logging.NewNop(), nil)
	params := map[string]any{"service_name": "intake"}
	if _, err := gen.Execute(context.Background(), params); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	_, err := gen.Execute(context.Background(), params)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for duplicate, got %v", err)
	}
}

func TestExecuteRequiresWorkspace(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	gen := New(cfg, logging.NewNop(), nil)
	_, err := gen.Execute(context.Background(), map[string]any{"service_name": "intake"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error without workspace, got %v", err)
	}
}

func TestExecuteValidatesParams(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.SeedProject(t, cfg)
	gen := New(cfg, logging.NewNop(), nil)

	cases := []struct {
		name   string
		params map[string]any
	}{
		{"missing name", map[string]any{}},
		{"invalid name", map[string]any{"service_name": "Bad Name"}},
		{"bad endpoint", map[string]any{"service_name": "ok", "endpoints": []any{"no-slash"}}},
		{"non-string endpoint", map[string]any{"service_name": "ok", "endpoints": []any{7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gen.Execute(context.Background(), tc.params); !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestExecuteCustomEndpoints(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.SeedProject(t, cfg)
	gen := New(cfg, logging.NewNop(), nil)

	_, err := gen.Execute(context.Background(), map[string]any{
		"service_name": "classifier",
		"endpoints":    []any{"/", "/classify-batch"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	src, err := os.ReadFile(filepath.Join(cfg.ServicesDir(), "classifier", "main.go"))
	if err != nil {
		t.Fatalf("read main.go: %v", err)
	}
	if !strings.Contains(string(src), "func handleClassifyBatch(") {
		t.Errorf("expected generic handler for custom endpoint, got:\n%s", src)
	}
	if strings.Contains(string(src), "func handleHealth(") {
		t.Error("health handler should not be rendered for custom endpoint list")
	}
}

func TestExportedName(t *testing.T) {
	cases := map[string]string{
		"/graph-extract": "GraphExtract",
		"/env_synthesis": "EnvSynthesis",
		"/v1/items":      "V1Items",
	}
	for in, want := range cases {
		if got := exportedName(in); got != want {
			t.Errorf("exportedName(%q) = %q, want %q", in, got, want)
		}
	}
}
