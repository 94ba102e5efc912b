// Package logging provides logging utilities for rampctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("adding key", "ramp", name, "position", pos)
//	logging.Warn("sort-on-change disabled", "ramp", name)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loading ramp %s...", name)
//	logging.UserSuccess("Key %d added", index)
//	logging.UserWarning("Index %d is reserved", index)
//	logging.UserError("Failed to open ramp: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
