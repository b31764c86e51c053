// Package config loads the quiet-inbox server configuration from
// environment variables, command-line flags, and an optional JSON file,
// merging the sources in that priority order and validating the result.
package config
