// Package stages implements the canonical processors for the default
// pipeline: intake, classifier, graph_extract, embeddings, env_synthesis,
// safety, runner, integrator, registrar. Each mirrors the process function a
// generated service exposes: append the stage name to the job trace and to
// the processed_by annotation, then pass the job along unchanged.
package stages
