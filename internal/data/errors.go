package data

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoFeasibleCandidate reports that the constraints leave nothing to draw from.
	ErrNoFeasibleCandidate = errors.New("no feasible candidate")
)

// InvalidArgumentError names the offending field and value of a rejected input.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
	Err    error // optional cause
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %v: %s: %v", e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) true.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// invalid builds an *InvalidArgumentError.
func invalid(field string, value any, format string, args ...any) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// Infeasible wraps ErrNoFeasibleCandidate as an input error on field.
func Infeasible(field string, value any, reason string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason, Err: ErrNoFeasibleCandidate}
}
