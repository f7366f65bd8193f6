package stages

import (
	"context"
	"log/slog"

	"noa/internal/job"
	"noa/internal/logging"
	"noa/internal/stage"
)

// Canonical stage names. The order of Names is the data-flow dependency order
// of the default pipeline and must not change.
const (
	Intake       = "intake"
	Classifier   = "classifier"
	GraphExtract = "graph_extract"
	Embeddings   = "embeddings"
	EnvSynthesis = "env_synthesis"
	Safety       = "safety"
	Runner       = "runner"
	Integrator   = "integrator"
	Registrar    = "registrar"
)

// Names returns the canonical stage sequence in execution order.
func Names() []string {
	return []string{
		Intake,
		Classifier,
		GraphExtract,
		Embeddings,
		EnvSynthesis,
		Safety,
		Runner,
		Integrator,
		Registrar,
	}
}

// serviceStage is the processor shape every generated service shares: record
// the stage in the trace, note it in the processed_by annotation, hand the
// job onward. The payload is never interpreted.
type serviceStage struct {
	name   string
	logger *slog.Logger
}

func newServiceStage(name string, logger *slog.Logger) *serviceStage {
	return &serviceStage{name: name, logger: logging.NewComponentLogger(logger, name)}
}

func (s *serviceStage) Process(ctx context.Context, j *job.Job) (*job.Job, error) {
	if err := j.RecordStep(s.name); err != nil {
		return j, err
	}
	j.Annotate(job.AnnotationProcessedBy, s.name)
	s.logger.Debug("processed job",
		logging.String(logging.FieldStage, s.name),
		logging.String(logging.FieldJobID, j.ID()),
	)
	return j, nil
}

func (s *serviceStage) HealthCheck(ctx context.Context) stage.Health {
	return stage.Healthy(s.name)
}

func NewIntake(logger *slog.Logger) stage.Processor { return newServiceStage(Intake, logger) }

func NewClassifier(logger *slog.Logger) stage.Processor { return newServiceStage(Classifier, logger) }

func NewGraphExtract(logger *slog.Logger) stage.Processor {
	return newServiceStage(GraphExtract, logger)
}

func NewEmbeddings(logger *slog.Logger) stage.Processor { return newServiceStage(Embeddings, logger) }

func NewEnvSynthesis(logger *slog.Logger) stage.Processor {
	return newServiceStage(EnvSynthesis, logger)
}

func NewSafety(logger *slog.Logger) stage.Processor { return newServiceStage(Safety, logger) }

func NewRunner(logger *slog.Logger) stage.Processor { return newServiceStage(Runner, logger) }

func NewIntegrator(logger *slog.Logger) stage.Processor { return newServiceStage(Integrator, logger) }

func NewRegistrar(logger *slog.Logger) stage.Processor { return newServiceStage(Registrar, logger) }
