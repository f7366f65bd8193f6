package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	projectDir string
	workspaces string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		projectDir: filepath.Join(base, "project"),
		workspaces: filepath.Join(base, "workspaces"),
	}

	content := fmt.Sprintf(`[paths]
project_dir = %q
workspace_dir = %q
log_dir = %q
state_dir = %q
`,
		env.projectDir,
		env.workspaces,
		filepath.Join(base, "logs"),
		filepath.Join(base, "state"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(env.projectDir, "services"), 0o755); err != nil {
		t.Fatalf("create services dir: %v", err)
	}
	compose := filepath.Join(env.projectDir, "docker-compose.yml")
	if err := os.WriteFile(compose, []byte("services: {}\n"), 0o644); err != nil {
		t.Fatalf("write compose file: %v", err)
	}

	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIRunAndRunsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "run", `{"kind":"demo"}`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Run 1 completed") {
		t.Fatalf("unexpected run output: %q", out)
	}
	if !strings.Contains(out, "intake > classifier") || !strings.Contains(out, "registrar") {
		t.Fatalf("expected step trace in output: %q", out)
	}

	entries, err := os.ReadDir(env.workspaces)
	if err != nil {
		t.Fatalf("read workspaces: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one workspace, got %d", len(entries))
	}
	markers, err := filepath.Glob(filepath.Join(env.workspaces, entries[0].Name(), "*.txt"))
	if err != nil {
		t.Fatalf("glob markers: %v", err)
	}
	if len(markers) != 9 {
		t.Fatalf("expected 9 stage markers, got %d", len(markers))
	}

	out, _, err = runCLI(t, env, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	if !strings.Contains(out, "completed") {
		t.Fatalf("expected completed run in list: %q", out)
	}

	out, _, err = runCLI(t, env, "runs", "show", "1")
	if err != nil {
		t.Fatalf("runs show: %v", err)
	}
	if !strings.Contains(out, "Status:    completed") || !strings.Contains(out, "intake") {
		t.Fatalf("unexpected runs show output: %q", out)
	}

	_, _, err = runCLI(t, env, "runs", "show", "99")
	if err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestCLIGenerateAndAgentsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "agents", "list")
	if err != nil {
		t.Fatalf("agents list: %v", err)
	}
	if !strings.Contains(out, "service-generator") {
		t.Fatalf("expected service-generator in list: %q", out)
	}

	out, _, err = runCLI(t, env, "generate", "intake")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Generated service intake") {
		t.Fatalf("unexpected generate output: %q", out)
	}
	mainPath := filepath.Join(env.projectDir, "services", "intake", "main.go")
	if _, err := os.Stat(mainPath); err != nil {
		t.Fatalf("expected generated main.go: %v", err)
	}

	_, _, err = runCLI(t, env, "generate", "intake")
	if err == nil {
		t.Fatal("expected duplicate service to fail")
	}

	out, _, err = runCLI(t, env, "logs", "--agent", "service-generator")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if !strings.Contains(out, "service_generated") {
		t.Fatalf("expected service_generated event: %q", out)
	}

	_, _, err = runCLI(t, env, "agents", "run", "missing-agent")
	if err == nil {
		t.Fatal("expected unknown agent error")
	}
}

func TestCLIHealthCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if !strings.Contains(out, "Compose file") || !strings.Contains(out, "registrar") {
		t.Fatalf("unexpected health output: %q", out)
	}

	if err := os.Remove(filepath.Join(env.projectDir, "docker-compose.yml")); err != nil {
		t.Fatalf("remove compose file: %v", err)
	}
	_, _, err = runCLI(t, env, "health")
	if err == nil {
		t.Fatal("expected health to fail without compose file")
	}
}

func TestCLIConfigCommandsHonorConfigFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "# source: "+env.configPath+" (exists: yes)") {
		t.Fatalf("expected show to resolve the --config path, got %q", out)
	}
	if !strings.Contains(out, "project_dir = '"+env.projectDir+"'") &&
		!strings.Contains(out, "project_dir = \""+env.projectDir+"\"") {
		t.Fatalf("expected configured project dir in output, got %q", out)
	}

	out, _, err = runCLI(t, env, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Config path: "+env.configPath) {
		t.Fatalf("expected validate to report the --config path, got %q", out)
	}
	if strings.Contains(out, "defaults were used") {
		t.Fatalf("validate fell back to defaults despite --config: %q", out)
	}
}

func TestCLIConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "generated-config.toml")

	out, _, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected config init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config at %s: %v", target, err)
	}

	_, _, err = runCLI(t, env, "config", "init", "--path", target)
	if err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
}
