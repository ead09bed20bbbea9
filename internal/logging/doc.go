// Package logging assembles the structured slog loggers used by both CLIs.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so both tools emit log lines
// with the same shape.
package logging
