// Package agents defines the automation agent contract and an explicit,
// immutable registry for resolving agents by name. Unknown names surface as
// ErrUnknownAgent rather than being silently ignored.
package agents
