package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrVersionConflict        = errors.New("version conflict")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// sanitize strips newlines from values before they end up in error messages.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError is returned when an object cannot be resolved by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrObjectNotFound, e.ID))
}

func (e ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a business validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrValueIsInvalid, e.ParamName))
}

func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %v is %s, min value is %v, max value is %v (cause: %v)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrValueIsRequired, e.ParamName))
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError is returned when a persisted aggregate version is malformed,
// for example negative after restoration from storage.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// VersionConflictError is returned by the persistence layer when an aggregate's
// stored version no longer matches the version it was loaded with. The write is
// rejected; retrying (reload and reapply) is the caller's decision.
type VersionConflictError struct {
	ParamName string
	ID        any
}

func NewVersionConflictError(paramName string, id any) VersionConflictError {
	return VersionConflictError{ParamName: paramName, ID: id}
}

func (e VersionConflictError) Error() string {
	return sanitize(fmt.Sprintf("%v: param is: %s, ID is: %s", ErrVersionConflict, e.ParamName, e.ID))
}

func (e VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// InvalidStateTransitionError is returned when an order status change is not
// permitted from the current status. The aggregate is left unmodified.
type InvalidStateTransitionError struct {
	From  string
	To    string
	Cause error
}

func NewInvalidStateTransitionError(from, to string) InvalidStateTransitionError {
	return InvalidStateTransitionError{From: from, To: to}
}

func NewInvalidStateTransitionErrorWithCause(from, to string, cause error) InvalidStateTransitionError {
	return InvalidStateTransitionError{From: from, To: to, Cause: cause}
}

func (e InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s -> %s (cause: %v)", ErrInvalidStateTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s -> %s", ErrInvalidStateTransition, e.From, e.To))
}

func (e InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
