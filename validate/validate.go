// Package validate holds the argument checks shared by basekit constructors.
//
// Every check panics with an *ArgumentError when it fails. Constructors call
// them before any state is built, so a failing check never leaves a
// half-initialized value behind.
package validate

import (
	"errors"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument is the error every *ArgumentError unwraps to.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected constructor argument.
type ArgumentError struct {
	Op     string // qualified function name, e.g. "seqs.Zip"
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Op + ": " + e.Arg + " " + e.Reason
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Fail panics with an *ArgumentError.
func Fail(op, arg, reason string) {
	panic(&ArgumentError{Op: op, Arg: arg, Reason: reason})
}

// NotNil panics if v is nil, including typed nils such as a nil func,
// pointer, map, slice or channel stored in an interface.
func NotNil(op, arg string, v any) {
	if isNil(v) {
		Fail(op, arg, "cannot be nil")
	}
}

// NotEmpty panics if s has no elements.
func NotEmpty[T any](op, arg string, s []T) {
	if len(s) == 0 {
		Fail(op, arg, "cannot be empty")
	}
}

// NoNils panics if s is empty or any of its elements is nil.
func NoNils[T any](op, arg string, s []T) {
	NotEmpty(op, arg, s)
	for _, v := range s {
		if isNil(v) {
			Fail(op, arg, "cannot contain nil")
		}
	}
}

// Positive panics if n <= 0.
func Positive[N constraints.Integer | constraints.Float](op, arg string, n N) {
	if n <= 0 {
		Fail(op, arg, "must be positive")
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
