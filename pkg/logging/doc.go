// Package logging provides structured logging utilities for aer components.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults for consistent logging across the CLI and libraries. It
// supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug
// logs.
//
// # Features
//
//   - Structured JSON logging to stderr (stdout stays clean for reports)
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module, version, and run id context
//   - Source location tracking for debug logs
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("aer", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("parsing version", "raw", "1.2.3.4")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("aer", "v1.0.0", "debug")
//	logger.Info("loading package metadata", "path", path)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("aer", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug aer version 1.2.3.4
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-08-30T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "parsing version",
//	    "module": "aer",
//	    "version": "v1.0.0",
//	    "run": "7f9c0a44-1f9f-4d2a-9a6e-1d2f3a4b5c6d",
//	    "raw": "1.2.3.4"
//	}
//
// Debug logs include source location.
package logging
