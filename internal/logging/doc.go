// Package logging wraps log/slog with noa conventions: console and JSON
// handlers, level parsing, standardized field keys, attr helpers, and
// context-derived logger augmentation so stage and agent identifiers appear
// consistently across every record.
package logging
