package agents

import (
	"context"
	"fmt"
	"sort"

	"noa/internal/services"
)

// ErrUnknownAgent reports a lookup for a name no agent was registered under.
var ErrUnknownAgent = fmt.Errorf("%w: unknown agent", services.ErrNotFound)

// Registry is an immutable name-to-agent mapping built once at startup.
// There is no process-wide registration; construct a Registry explicitly
// with every agent it should know about.
type Registry struct {
	agents map[string]Agent
}

// NewRegistry builds a registry from the given agents. Later duplicates of a
// name win, matching last-registration semantics.
func NewRegistry(list ...Agent) *Registry {
	agents := make(map[string]Agent, len(list))
	for _, agent := range list {
		if agent == nil {
			continue
		}
		agents[agent.Name()] = agent
	}
	return &Registry{agents: agents}
}

// Get resolves an agent by name.
func (r *Registry) Get(name string) (Agent, error) {
	agent, ok := r.agents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
	}
	return agent, nil
}

// List returns all registered agent names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute resolves an agent by name and runs it.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]any) (*Result, error) {
	agent, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return agent.Execute(ctx, params)
}
