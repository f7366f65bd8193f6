// Package services holds cross-cutting helpers shared by pipeline stages and
// agents: sentinel error classification with contextual wrapping, and context
// carriers for structured logging (job, stage, agent, run identifiers).
//
// Errors produced inside stages or agents should be tagged with one of the
// exported sentinels at their origin via Wrap; the pipeline runner itself
// never wraps stage failures, so classification survives propagation intact.
package services
