// Package logger builds slog loggers with the module's conventions: JSON by
// default, optional static attributes, and context extractors so request-
// scoped values (like the resolved business, see business.LoggerExtractor)
// attach to every record automatically.
package logger
