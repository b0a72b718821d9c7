// Package shared contains the error taxonomy and value objects used across the
// roster domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base error kinds that can be used for error checking with errors.Is().
var (
	// Taxonomy surfaced to the user
	ErrValidation       = errors.New("validation error")
	ErrCommandFormat    = errors.New("invalid command format")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrCommandExecution = errors.New("command execution failed")

	// Refinements
	ErrNotFound        = errors.New("entity not found")
	ErrAlreadyExists   = errors.New("entity already exists")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrStateTransition = errors.New("invalid state transition")

	// Storage collaborator
	ErrStorage = errors.New("storage error")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "roster", "parser"
	Op      string // Operation that failed, e.g., "AddClass", "Tokenize"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation builds an ErrValidation error carrying a fixed constraint message.
func Validation(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrValidation, message)
}

// MessageInvalidCommandFormat prefixes every usage error.
const MessageInvalidCommandFormat = "Invalid command format! \n%s"

// CommandFormat builds an ErrCommandFormat error for the given usage text.
// The cause, if any, is kept for errors.Is() but not shown to the user.
func CommandFormat(op, usage string, cause error) *DomainError {
	return WrapError("parser", op, ErrCommandFormat, fmt.Sprintf(MessageInvalidCommandFormat, usage), cause)
}

// Execution builds an ErrCommandExecution error refined by the given cause.
func Execution(op, message string, cause error) *DomainError {
	return WrapError("command", op, ErrCommandExecution, message, cause)
}

// Parser and dispatcher errors
var (
	ErrUnknownCommandWord = NewDomainError("parser", "ParseCommand", ErrUnknownCommand, "Unknown command")
	ErrNothingToEdit      = NewDomainError("parser", "ParseEdit", ErrCommandFormat, "At least one field to edit must be provided.")
)

// Roster execution errors. Each carries both the taxonomy kind and a refinement.
var (
	ErrDuplicateClass = WrapError("roster", "AddClass", ErrCommandExecution,
		"This class already exists in EduTrack", ErrAlreadyExists)
	ErrUnknownClass = WrapError("roster", "FindClass", ErrCommandExecution,
		"The class provided does not exist in EduTrack", ErrNotFound)
	ErrDuplicateStudent = WrapError("roster", "AddStudent", ErrCommandExecution,
		"This student already exists in the class", ErrAlreadyExists)
	ErrInvalidStudentIndex = WrapError("roster", "FindStudent", ErrCommandExecution,
		"The student index provided is invalid", ErrValueOutOfRange)
	ErrInvalidClassIndex = WrapError("roster", "FindClass", ErrCommandExecution,
		"The class index provided is invalid", ErrValueOutOfRange)
	ErrStudentAlreadyMarkedPresent = WrapError("student", "MarkPresent", ErrCommandExecution,
		"Student has already been marked present for the current lesson", ErrStateTransition)
	ErrStudentAlreadyMarkedAbsent = WrapError("student", "MarkAbsent", ErrCommandExecution,
		"Student has already been marked absent for the current lesson", ErrStateTransition)
)

// Message extracts the user-facing message of err. For a chain of domain errors
// the outermost message wins; other errors fall back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// IsValidation checks if the error is a malformed field value.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsCommandFormat checks if the error is a missing, duplicate or misplaced argument.
func IsCommandFormat(err error) bool {
	return errors.Is(err, ErrCommandFormat)
}

// IsUnknownCommand checks if the error is an unrecognised command word.
func IsUnknownCommand(err error) bool {
	return errors.Is(err, ErrUnknownCommand)
}

// IsCommandExecution checks if the error happened while executing a parsed command.
func IsCommandExecution(err error) bool {
	return errors.Is(err, ErrCommandExecution)
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
