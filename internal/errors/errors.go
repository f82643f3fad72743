package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the tlr binary.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitConfigError  = 2
)

// Kind identifies the stage that failed.
type Kind int

const (
	KindRead Kind = iota
	KindAggregate
	KindFormat
	KindConfig
	KindStorage
	KindExport
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindAggregate:
		return "aggregate"
	case KindFormat:
		return "format"
	case KindConfig:
		return "config"
	case KindStorage:
		return "storage"
	case KindExport:
		return "export"
	default:
		return "unknown"
	}
}

// Error is the error type returned across package boundaries.
type Error struct {
	Kind    Kind
	Message string
	Path    string // File or directory involved, if any
	Cause   error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if e.Kind == KindConfig {
		return ExitConfigError
	}
	return ExitRuntimeError
}

// Read creates an error for a failed directory walk, file open or parse.
func Read(path, message string, cause error) *Error {
	return &Error{Kind: KindRead, Message: message, Path: path, Cause: cause}
}

// Aggregate creates an error for a counter set that cannot produce a result.
func Aggregate(message string, cause error) *Error {
	return &Error{Kind: KindAggregate, Message: message, Cause: cause}
}

// Format creates an error for a report that could not be rendered or written.
func Format(path, message string, cause error) *Error {
	return &Error{Kind: KindFormat, Message: message, Path: path, Cause: cause}
}

// Config creates a configuration error.
func Config(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: message, Cause: cause}
}

// Configf creates a configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...), nil)
}

// Storage creates an error for a snapshot that could not be saved or loaded.
func Storage(path, message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Path: path, Cause: cause}
}

// Export creates an error for a failed publish.
func Export(message string, cause error) *Error {
	return &Error{Kind: KindExport, Message: message, Cause: cause}
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitRuntimeError
}
