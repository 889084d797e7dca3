// Package config handles configuration management for svnext.
// It layers embedded defaults, a TOML or YAML project file, a .env file,
// SVNEXT_* environment variables and command-line overrides, and decodes
// the result into a typed Config whose external declarations are
// validated before anything runs.
package config
