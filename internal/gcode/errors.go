package gcode

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax = errors.New("malformed line")
	ErrField  = errors.New("invalid field value")
)

// LineError describes why a single line was dropped.
type LineError struct {
	Kind  error
	Field byte
	Msg   string
}

func (e *LineError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != 0 {
		return fmt.Sprintf("%s: field %c: %s", e.Kind.Error(), e.Field, e.Msg)
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *LineError) Unwrap() error { return e.Kind }

func syntaxf(format string, args ...any) error {
	return &LineError{Kind: ErrSyntax, Msg: fmt.Sprintf(format, args...)}
}

func fieldf(field byte, format string, args ...any) error {
	return &LineError{Kind: ErrField, Field: field, Msg: fmt.Sprintf(format, args...)}
}
