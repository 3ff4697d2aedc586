package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// Sentinel errors for decode failures. Every error returned by the decoder
// wraps exactly one of them.
var (
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUnexpectedShape   = errors.New("unexpected shape")
	ErrUnhandledField    = errors.New("unhandled field")
	ErrUnhandledProperty = errors.New("unhandled property")
)

// TypeMismatchError reports a value whose kind cannot be coerced to the
// required primitive.
type TypeMismatchError struct {
	Path     scenepath.Path
	Expected string
	Actual   value.Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s %s", e.Path, ErrTypeMismatch, e.Expected, e.Actual.Kind(), preview(e.Actual))
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ShapeError reports a table whose keys do not match the fixed shape the
// decoder expects at that location.
type ShapeError struct {
	Path     scenepath.Path
	Expected []string
	Actual   []string
	// Detail narrows down what is wrong, e.g. a missing key.
	Detail string
}

func (e *ShapeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", e.Path, ErrUnexpectedShape)
	if e.Detail != "" {
		fmt.Fprintf(&sb, ": %s", e.Detail)
	}
	if e.Expected != nil {
		fmt.Fprintf(&sb, " (expected keys %v, got %v)", e.Expected, e.Actual)
	}
	return sb.String()
}

func (e *ShapeError) Unwrap() error { return ErrUnexpectedShape }

// UnhandledFieldError reports a field name the decoder does not know inside
// a record it does know. Path points at the field itself.
type UnhandledFieldError struct {
	Path       scenepath.Path
	Field      string
	Value      value.Value
	Suggestion string
}

func (e *UnhandledFieldError) Error() string {
	msg := fmt.Sprintf("%s: %s %q = %s", e.Path, ErrUnhandledField, e.Field, preview(e.Value))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *UnhandledFieldError) Unwrap() error { return ErrUnhandledField }

// UnhandledPropertyError describes a property kind the decoder skipped. It is
// never returned from Decode; it is handed to the skip handler.
type UnhandledPropertyError struct {
	Path scenepath.Path
	Name string
}

func (e *UnhandledPropertyError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Path, ErrUnhandledProperty, e.Name)
}

func (e *UnhandledPropertyError) Unwrap() error { return ErrUnhandledProperty }

func mismatch(p scenepath.Path, expected string, actual value.Value) error {
	return &TypeMismatchError{Path: p, Expected: expected, Actual: actual}
}

// previewLimit bounds how much of a raw value ends up in an error message.
const previewLimit = 80

func preview(v value.Value) string {
	s := v.String()
	if len(s) > previewLimit {
		return s[:previewLimit] + "…"
	}
	return s
}
