// Package config loads, normalizes, and validates noa configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/noa/config.toml or a
// project-local noa.toml. The Config type centralizes every knob the CLI
// needs: project and workspace directories, generator scaffolding settings,
// and logging options.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
