package agents

import "context"

// Agent is a named automation unit the CLI can execute on demand.
type Agent interface {
	Name() string
	Description() string
	Execute(ctx context.Context, params map[string]any) (*Result, error)
}

// Result describes what an agent produced.
type Result struct {
	Files     []string
	NextSteps []string
	Details   map[string]any
}
