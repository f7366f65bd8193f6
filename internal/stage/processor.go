package stage

import (
	"context"

	"noa/internal/job"
)

// Processor describes the contract the pipeline runner needs from each stage:
// take the current job, record yourself, return the job to carry forward.
type Processor interface {
	Process(context.Context, *job.Job) (*job.Job, error)
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(context.Context, *job.Job) (*job.Job, error)

func (f ProcessorFunc) Process(ctx context.Context, j *job.Job) (*job.Job, error) {
	return f(ctx, j)
}

// HealthChecker is an optional capability a processor may implement so the
// runner can report readiness before or between runs.
type HealthChecker interface {
	HealthCheck(context.Context) Health
}
