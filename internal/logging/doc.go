// Package logging assembles structured slog loggers used by vttclean.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers that tag log lines with the run's
// correlation id. Loggers write to stderr by default because stdout carries
// cleaned transcript text. NewNop serves tests and wiring that cannot fail.
package logging
