package pipeline

import (
	"log/slog"

	"noa/internal/stages"
)

// DefaultStages returns the canonical nine-stage configuration in its
// data-flow dependency order: intake feeds classification, classification
// feeds extraction, and so on through registration. The order is declared
// here, never inferred.
func DefaultStages(logger *slog.Logger) []Stage {
	return []Stage{
		{Name: stages.Intake, Processor: stages.NewIntake(logger)},
		{Name: stages.Classifier, Processor: stages.NewClassifier(logger)},
		{Name: stages.GraphExtract, Processor: stages.NewGraphExtract(logger)},
		{Name: stages.Embeddings, Processor: stages.NewEmbeddings(logger)},
		{Name: stages.EnvSynthesis, Processor: stages.NewEnvSynthesis(logger)},
		{Name: stages.Safety, Processor: stages.NewSafety(logger)},
		{Name: stages.Runner, Processor: stages.NewRunner(logger)},
		{Name: stages.Integrator, Processor: stages.NewIntegrator(logger)},
		{Name: stages.Registrar, Processor: stages.NewRegistrar(logger)},
	}
}

// NewDefault builds a Runner over the canonical stage configuration.
func NewDefault(logger *slog.Logger) (*Runner, error) {
	return New(DefaultStages(logger), WithLogger(logger))
}
