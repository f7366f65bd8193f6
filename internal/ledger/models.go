package ledger

import "time"

// Status represents the lifecycle of a recorded pipeline run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one pipeline invocation as recorded in the ledger.
type Run struct {
	ID           int64
	Payload      string
	Workspace    string
	Status       Status
	Steps        []string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AgentEvent is one audit entry written during an agent execution.
type AgentEvent struct {
	ID        int64
	Agent     string
	Action    string
	Details   map[string]any
	CreatedAt time.Time
}
