// Package pipeline sequences stage processors over jobs.
//
// A Runner is a strict linear fold: it creates a Job from the caller's
// payload, hands it to each configured stage in declared order, and returns
// the final job. Stage configuration is an explicit ordered value fixed at
// construction; there is no global registry and no dynamic lookup at
// invocation time. Stage failures propagate unchanged and stop the fold,
// leaving the job's trace as the record of how far execution progressed.
//
// The runner holds no state between runs and never persists anything; run
// bookkeeping belongs to callers (the CLI records runs in the ledger).
package pipeline
