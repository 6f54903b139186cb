package validators

import (
	"errors"
	"strings"

	"github.com/muzaparoff/rest-api-exam/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Human-readable per-field messages. Shared by the server handlers and the
// client library so both report identical failures.
const (
	MsgInvalidID      = "invalid Israeli ID: must be 8-9 digits with valid checksum"
	MsgInvalidPhone   = "invalid phone number: must start with 05 and be exactly 10 digits"
	MsgInvalidName    = "name must be 2-100 characters long and not blank"
	MsgInvalidAddress = "address must be 1-200 characters long and not blank"
	MsgNoFields       = "at least one field must be provided for update"
)

// ValidationError aggregates every rejected field of a create or update
// request into a single error value. Unlike a fail-fast check it always
// carries the complete list of failures, so callers can report all problems
// at once.
type ValidationError struct {
	// Message summarises the failure ("request validation failed", or the
	// structural reason when no individual field is at fault).
	Message string

	// Fields lists each rejected field with its reason and rejected value.
	// Empty for purely structural failures such as an empty update set.
	Fields []models.FieldError
}

// Error implements the error interface. The message names every rejected
// field so the failure is readable even without the structured Fields list.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return e.Message + ": " + strings.Join(names, ", ")
}

// add appends one field failure to the error.
func (e *ValidationError) add(field, message, rejected string) {
	e.Fields = append(e.Fields, models.FieldError{
		Field:         field,
		Message:       message,
		RejectedValue: rejected,
	})
}

// AsValidationError unwraps err into a *ValidationError if it is one,
// following wrapped chains. Returns nil when err carries no validation
// failure.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
