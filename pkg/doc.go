// Package pkg provides shared utilities for the fram driver stack.
//
// This package contains common functionality used across the driver and
// the bus HAL implementations, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for two-wire bus transport errors
//   - Component identifiers for log filtering
//
// The package relies only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with driver-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogDebug(pkg.ComponentDriver, "planned transfer", "chunks", 2)
//
// Logging is observability only. The driver never treats a log call as
// error handling: every failure is returned to the caller.
//
// # Errors
//
// Common transport errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrNACK) {
//	    // Device did not acknowledge
//	}
package pkg
