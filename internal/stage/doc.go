// Package stage defines the contract between the pipeline runner and the
// processors it sequences. A stage's only required effect is recording its
// own name on the job; anything else it does is a per-stage convention.
package stage
