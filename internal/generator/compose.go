package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"noa/internal/services"
)

// updateCompose registers the new service in the project compose file so it
// participates in `docker compose up` alongside its siblings.
func (g *ServiceGenerator) updateCompose(name string) error {
	path := g.cfg.ComposePath()
	raw, err := os.ReadFile(path)
	if err != nil {
		return services.Wrap(services.ErrWorkspace, AgentName, "read compose file", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return services.Wrap(services.ErrValidation, AgentName, "parse compose file", path, err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}

	servicesMap, ok := doc["services"].(map[string]any)
	if !ok || servicesMap == nil {
		servicesMap = make(map[string]any)
	}

	port := g.cfg.Generator.ServicePort
	servicesMap[name] = map[string]any{
		"build": "./services/" + name,
		"ports": []string{fmt.Sprintf("%d:%d", port, port)},
	}
	doc["services"] = servicesMap

	updated, err := yaml.Marshal(doc)
	if err != nil {
		return services.Wrap(services.ErrValidation, AgentName, "encode compose file", path, err)
	}
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return services.Wrap(services.ErrWorkspace, AgentName, "write compose file", path, err)
	}
	return nil
}
