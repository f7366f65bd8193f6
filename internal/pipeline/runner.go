package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"noa/internal/job"
	"noa/internal/logging"
	"noa/internal/services"
	"noa/internal/stage"
)

// Stage pairs a registration name with its processor. The slice handed to New
// is the whole pipeline configuration; there is no other registration path.
type Stage struct {
	Name      string
	Processor stage.Processor
}

// Runner executes a fixed, ordered stage sequence over freshly created jobs.
type Runner struct {
	stages []Stage
	logger *slog.Logger
}

// Option customizes runner construction.
type Option func(*Runner)

// WithLogger attaches a structured logger used for stage lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New builds a Runner from an ordered stage list. Misconfiguration (an empty
// name or a missing processor) fails here, not at stage invocation time.
// Duplicate names are allowed; a stage may legitimately run more than once.
func New(stages []Stage, opts ...Option) (*Runner, error) {
	for i, s := range stages {
		if s.Name == "" {
			return nil, services.Wrap(services.ErrConfiguration, "pipeline", "build",
				fmt.Sprintf("stage at index %d has empty name", i), nil)
		}
		if s.Processor == nil {
			return nil, services.Wrap(services.ErrConfiguration, "pipeline", "build",
				fmt.Sprintf("stage %s has no processor", s.Name), nil)
		}
	}

	r := &Runner{stages: make([]Stage, len(stages))}
	copy(r.stages, stages)
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	return r, nil
}

// StageNames returns the configured stage sequence in execution order.
func (r *Runner) StageNames() []string {
	names := make([]string, len(r.stages))
	for i, s := range r.stages {
		names[i] = s.Name
	}
	return names
}

// Run creates a Job for payload and folds it through the configured stages in
// order, replacing the working job with each processor's return value. The
// first stage error stops the pipeline and propagates unchanged; the partial
// job is returned alongside it so callers can inspect how far execution got.
func (r *Runner) Run(ctx context.Context, payload any, baseDir string) (*job.Job, error) {
	ctx = services.WithRunID(ctx, uuid.NewString())

	j, err := job.Create(payload, baseDir)
	if err != nil {
		return nil, err
	}
	ctx = services.WithJobID(ctx, j.ID())

	start := time.Now()
	runLogger := logging.WithContext(ctx, r.logger)
	runLogger.Info("pipeline started",
		logging.String(logging.FieldEventType, "pipeline_start"),
		logging.Int("stage_count", len(r.stages)),
	)

	for _, s := range r.stages {
		stageCtx := services.WithStage(ctx, s.Name)
		stageLogger := logging.WithContext(stageCtx, r.logger)

		stageLogger.Info("stage started",
			logging.String(logging.FieldEventType, "stage_start"),
		)

		next, err := s.Processor.Process(stageCtx, j)
		if err != nil {
			stageLogger.Error("stage failed",
				logging.String(logging.FieldEventType, "stage_failure"),
				logging.Int("completed_steps", len(j.Steps)),
				logging.Error(err),
			)
			return j, err
		}
		if next != nil {
			j = next
		}

		stageLogger.Info("stage completed",
			logging.String(logging.FieldEventType, "stage_complete"),
			logging.Int("completed_steps", len(j.Steps)),
		)
	}

	runLogger.Info("pipeline completed",
		logging.String(logging.FieldEventType, "pipeline_complete"),
		logging.Int("completed_steps", len(j.Steps)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return j, nil
}

// Health reports readiness for every configured stage. Processors that do not
// implement stage.HealthChecker are assumed ready.
func (r *Runner) Health(ctx context.Context) []stage.Health {
	results := make([]stage.Health, 0, len(r.stages))
	for _, s := range r.stages {
		if checker, ok := s.Processor.(stage.HealthChecker); ok {
			results = append(results, checker.HealthCheck(ctx))
			continue
		}
		results = append(results, stage.Healthy(s.Name))
	}
	return results
}
