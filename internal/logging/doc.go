// Package logging assembles structured slog loggers for multiview-seed.
//
// It owns the console and JSON handlers, level parsing, and output plumbing.
// Console output is colorized only when it lands on a terminal, so redirected
// logs stay plain. The package also provides a no-op logger for tests.
//
// Logs default to stderr: stdout is reserved for the run summary so it can be
// piped into other tools.
package logging
