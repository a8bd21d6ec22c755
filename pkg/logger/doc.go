// Package logger builds configured log/slog loggers with the small set of
// knobs the services in this module need: level, text or JSON output, a
// custom writer, and a static service attribute.
package logger
