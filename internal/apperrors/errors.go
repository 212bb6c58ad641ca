// Package apperrors defines the error taxonomy shared by all services:
// validation, not-found and conflict errors are reported to the caller,
// anything else is treated as internal.
package apperrors

import (
	"errors"
	"fmt"
)

type kind int

const (
	kindValidation kind = iota
	kindNotFound
	kindConflict
)

type appError struct {
	kind    kind
	message string
}

func (e *appError) Error() string {
	return e.message
}

func Validation(format string, args ...interface{}) error {
	return &appError{kind: kindValidation, message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &appError{kind: kindNotFound, message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &appError{kind: kindConflict, message: fmt.Sprintf(format, args...)}
}

func is(err error, k kind) bool {
	var ae *appError
	return errors.As(err, &ae) && ae.kind == k
}

func IsValidation(err error) bool { return is(err, kindValidation) }

func IsNotFound(err error) bool { return is(err, kindNotFound) }

func IsConflict(err error) bool { return is(err, kindConflict) }
