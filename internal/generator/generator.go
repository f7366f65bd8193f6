package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"noa/internal/agents"
	"noa/internal/config"
	"noa/internal/ledger"
	"noa/internal/logging"
	"noa/internal/services"
)

// AgentName is the registry key the service generator is reachable under.
const AgentName = "service-generator"

var serviceNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ServiceGenerator scaffolds new microservice boilerplate inside the project
// workspace: a main.go with the requested endpoints, a go.mod, a Dockerfile,
// a test stub, and a docker-compose entry.
type ServiceGenerator struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *ledger.Store
	titler cases.Caser
}

// New constructs the generator. The ledger store may be nil; event recording
// is then skipped.
func New(cfg *config.Config, logger *slog.Logger, store *ledger.Store) *ServiceGenerator {
	return &ServiceGenerator{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, AgentName),
		store:  store,
		titler: cases.Title(language.English),
	}
}

func (g *ServiceGenerator) Name() string { return AgentName }

func (g *ServiceGenerator) Description() string {
	return "Generate new microservice boilerplate"
}

// Execute scaffolds a service. Recognized params: service_name (string,
// required) and endpoints ([]string, defaulting to the configured list).
func (g *ServiceGenerator) Execute(ctx context.Context, params map[string]any) (*agents.Result, error) {
	name, endpoints, err := parseParams(params, g.cfg.Generator.DefaultEndpoints)
	if err != nil {
		return nil, err
	}

	g.recordEvent(ctx, "start_service_generation", map[string]any{"service_name": name})

	if err := g.validateWorkspace(); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(g.cfg.Paths.ProjectDir, ".noa.lock"))
	if err := lock.Lock(); err != nil {
		return nil, services.Wrap(services.ErrWorkspace, AgentName, "lock project", g.cfg.Paths.ProjectDir, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	servicePath := filepath.Join(g.cfg.ServicesDir(), name)
	if _, err := os.Stat(servicePath); err == nil {
		g.recordEvent(ctx, "service_exists_error", map[string]any{"service_name": name})
		return nil, services.Wrap(services.ErrValidation, AgentName, "generate",
			fmt.Sprintf("service %q already exists", name), nil)
	}

	if err := os.MkdirAll(servicePath, 0o755); err != nil {
		return nil, services.Wrap(services.ErrWorkspace, AgentName, "create service directory", servicePath, err)
	}
	g.recordEvent(ctx, "created_directory", map[string]any{"path": servicePath})

	data := templateData{
		Name:        name,
		DisplayName: g.displayName(name),
		Module:      g.cfg.Generator.ModulePrefix + "/" + name,
		Port:        g.cfg.Generator.ServicePort,
		Endpoints:   buildEndpoints(name, endpoints),
	}

	files, err := g.renderFiles(servicePath, data)
	if err != nil {
		return nil, err
	}

	if err := g.updateCompose(name); err != nil {
		return nil, err
	}
	files = append(files, g.cfg.ComposePath())

	g.logger.Info("service generated",
		logging.String("service_name", name),
		logging.Int("files_created", len(files)),
	)
	g.recordEvent(ctx, "service_generated", map[string]any{
		"service_name":  name,
		"files_created": files,
		"endpoints":     endpoints,
	})

	return &agents.Result{
		Files: files,
		NextSteps: []string{
			fmt.Sprintf("cd %s", servicePath),
			"go run .  # start the service locally",
			fmt.Sprintf("docker compose up --build %s", name),
			"go test ./...",
		},
		Details: map[string]any{
			"service_name": name,
			"endpoints":    endpoints,
		},
	}, nil
}

func (g *ServiceGenerator) validateWorkspace() error {
	if info, err := os.Stat(g.cfg.ServicesDir()); err != nil || !info.IsDir() {
		return services.Wrap(services.ErrValidation, AgentName, "validate workspace",
			fmt.Sprintf("services directory missing at %s", g.cfg.ServicesDir()), nil)
	}
	if _, err := os.Stat(g.cfg.ComposePath()); err != nil {
		return services.Wrap(services.ErrValidation, AgentName, "validate workspace",
			fmt.Sprintf("compose file missing at %s", g.cfg.ComposePath()), nil)
	}
	return nil
}

func (g *ServiceGenerator) displayName(name string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return g.titler.String(spaced) + " Service"
}

func (g *ServiceGenerator) recordEvent(ctx context.Context, action string, details map[string]any) {
	if g.store == nil {
		return
	}
	if err := g.store.RecordAgentEvent(ctx, AgentName, action, details); err != nil {
		g.logger.Warn("failed to record agent event",
			logging.String("action", action),
			logging.Error(err),
		)
	}
}

func parseParams(params map[string]any, defaults []string) (string, []string, error) {
	name, _ := params["service_name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, services.Wrap(services.ErrValidation, AgentName, "parse params", "service_name is required", nil)
	}
	if !serviceNamePattern.MatchString(name) {
		return "", nil, services.Wrap(services.ErrValidation, AgentName, "parse params",
			fmt.Sprintf("invalid service name %q", name), nil)
	}

	endpoints := append([]string(nil), defaults...)
	switch raw := params["endpoints"].(type) {
	case nil:
	case []string:
		if len(raw) > 0 {
			endpoints = raw
		}
	case []any:
		converted := make([]string, 0, len(raw))
		for _, v := range raw {
			s, ok := v.(string)
			if !ok {
				return "", nil, services.Wrap(services.ErrValidation, AgentName, "parse params", "endpoints must be strings", nil)
			}
			converted = append(converted, s)
		}
		if len(converted) > 0 {
			endpoints = converted
		}
	default:
		return "", nil, services.Wrap(services.ErrValidation, AgentName, "parse params", "endpoints must be a string list", nil)
	}

	for _, endpoint := range endpoints {
		if !strings.HasPrefix(endpoint, "/") {
			return "", nil, services.Wrap(services.ErrValidation, AgentName, "parse params",
				fmt.Sprintf("endpoint %q must start with /", endpoint), nil)
		}
	}
	return name, endpoints, nil
}
