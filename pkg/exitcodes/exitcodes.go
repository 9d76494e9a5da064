// Package exitcodes provides centralized exit code definitions and error
// handling for the chartpick tool. Exit codes are organized in ranges to
// categorize different types of failures:
//
//	0:     Success
//	1-9:   Input/Configuration Errors (e.g., missing arguments, invalid config)
//	10-19: Manifest Processing Errors (e.g., retrieval, parsing, missing charts)
//	20-29: Runtime Errors (e.g., I/O errors, system failures)
package exitcodes

import (
	"errors"
	"fmt"
)

// Exit code constants organized by category
const (
	// Success (0)
	ExitSuccess = 0

	// Input/Configuration Errors (1-9)
	ExitMissingRequiredArgs     = 1 // Wrong number of positional arguments
	ExitInputConfigurationError = 2 // General configuration error (flags, config file)

	// Manifest Processing Errors (10-19)
	ExitManifestRetrievalFailed = 10 // git could not produce the manifest at the revision
	ExitManifestParsingError    = 11 // Retrieved manifest is not valid JSON
	ExitChartNotFound           = 12 // Requested chart missing, or helmCharts mapping absent

	// Runtime Errors (20-29)
	ExitGeneralRuntimeError = 20 // General runtime/system error
	ExitIOError             = 21 // IO operation error

	// Internal Errors (30-39)
	ExitInternalError = 30 // Internal error in command execution
)

// ExitCodeError wraps an error with an exit code for consistent error handling.
// This type is used throughout the codebase to propagate both error details
// and the appropriate exit code up the call stack.
type ExitCodeError struct {
	Code int   // Exit code to return
	Err  error // Underlying error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// IsExitCodeError checks if an error is an ExitCodeError and returns its code.
// Returns false and 0 if the error is not an ExitCodeError.
func IsExitCodeError(err error) (int, bool) {
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

// CodeDescriptions maps exit codes to their human-readable descriptions
var CodeDescriptions = map[int]string{
	ExitSuccess:                 "Success",
	ExitMissingRequiredArgs:     "Wrong number of positional arguments",
	ExitInputConfigurationError: "General configuration error",
	ExitManifestRetrievalFailed: "Failed to retrieve manifest at revision",
	ExitManifestParsingError:    "Retrieved manifest is not valid JSON",
	ExitChartNotFound:           "Requested chart not found in source manifest",
	ExitGeneralRuntimeError:     "General runtime/system error",
	ExitIOError:                 "IO operation error",
	ExitInternalError:           "Internal error in command execution",
}
