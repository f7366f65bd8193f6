// Package ledger persists an audit trail of pipeline runs and agent
// executions in SQLite.
//
// The Store records each run's payload summary, final workspace, status, and
// step trace, plus per-agent event entries mirroring what agents log during
// execution. The pipeline runner itself never touches the ledger; callers
// (the CLI) bracket Run invocations with BeginRun and Complete/FailRun.
//
// The database is transient bookkeeping rather than a long-term archive.
// Schema changes bump the version in schema.go; users delete the database to
// adopt the new schema.
package ledger
