// Package preflight validates the runtime environment before work starts:
// directory access for workspaces, logs, and state, and the presence of the
// project layout the generator depends on.
package preflight
