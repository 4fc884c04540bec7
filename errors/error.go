package errors

import (
	"fmt"
)

// NotFoundError occurs when a name or dotted path does not resolve against a Schema
type NotFoundError struct{ Path string }

// Error returns a textual representation of this NotFoundError
func (e NotFoundError) Error() string {
	return fmt.Sprintf("Cannot find field '%s' in schema", e.Path)
}

// InvalidArgumentError occurs when a structurally malformed request is made at build
// time, such as claiming the reserved unsorted order ID for a sorted order
type InvalidArgumentError struct{ Reason string }

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return e.Reason
}

// ValidationError occurs when a cross-cutting consistency check fails at commit time,
// such as a schema change conflicting with a live sort order's field reference
type ValidationError struct{ Message string }

// Error returns a textual representation of this ValidationError
func (e ValidationError) Error() string {
	return e.Message
}

// IsNotFound returns true iff err is a NotFoundError
func IsNotFound(err error) bool {
	_, ok := err.(NotFoundError)
	return ok
}

// IsInvalidArgument returns true iff err is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	_, ok := err.(InvalidArgumentError)
	return ok
}

// IsValidation returns true iff err is a ValidationError
func IsValidation(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}
