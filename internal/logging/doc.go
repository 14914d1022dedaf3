// Package logging assembles structured slog loggers and formatting helpers used
// across resorg.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standard field keys (component, run_id,
// reservoir, source, target) so every placement log line has the same shape.
// Logs are written to stderr; stdout is reserved for listings and reports.
// NewNop provides a silent logger for tests and wiring code that cannot fail.
package logging
