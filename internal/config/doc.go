// Package config loads, normalizes, and validates resorg configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from --config, ~/.config/resorg/config.toml,
// or ./resorg.toml. A missing file is not an error: the defaults reproduce the
// plain copy-and-overwrite behaviour. Command-line flags are applied on top of
// the loaded Config by the CLI.
package config
