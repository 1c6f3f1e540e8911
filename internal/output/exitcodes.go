// Package output provides structured output and error handling for the
// portage CLI.
package output

import "errors"

// Exit codes used by the CLI:
// 0 = Success
// 1 = Failure (conversion failed, or --strict escalated warnings)
// 2 = Usage error (bad arguments, unknown platform)
// 3 = Environment error (unreadable source, unwritable output)
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitEnvironment = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for invalid invocations (exit code 2).
// Use for: bad flags, unknown platforms, missing arguments.
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
	}
}

// NewFailureError creates an error for failed operations (exit code 1).
// Use for: conversion failures and --strict warning escalation.
func NewFailureError(message string) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
	}
}

// NewFailureErrorWithCause creates a failure error wrapping an underlying cause.
func NewFailureErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewEnvError creates an error for environment problems (exit code 3).
// Use for: unreadable files, unwritable directories, missing homes.
func NewEnvError(message string) *ExitError {
	return &ExitError{
		Code:    ExitEnvironment,
		Message: message,
	}
}

// NewEnvErrorWithCause creates an environment error wrapping an underlying cause.
func NewEnvErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitEnvironment,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Untyped errors are unexpected failures
	return ExitFailure
}
