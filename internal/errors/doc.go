// Package errors provides typed errors with exit codes for rampctl.
//
// # Error Types
//
// RampError is the base error type that wraps an error with an exit code:
//
//	type RampError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitRampNotFound = 2  // Ramp document does not exist
//	ExitKeyNotFound  = 3  // Key index does not exist
//	ExitCapacity     = 4  // Key index space exhausted
//	ExitParseError   = 5  // Malformed parameter name
//	ExitConfigError  = 6  // Configuration error
//	ExitStoreError   = 7  // Parameter store operation failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.RampNotFound("sunset")
//	errors.KeyNotFound(12)
//	errors.CapacityExceeded()
//	errors.ParseError("PositionXY")
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
