// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: JSON output for
// production, a colourised tint handler for local use, optional file output
// rotated by lumberjack, and helpers for carrying a request-scoped logger in
// a context.
package logger
