package stamp

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches any *FormatError
	ErrFormat = errors.New("unexpected git log format")
	// ErrTimestamp matches any *TimestampError
	ErrTimestamp = errors.New("invalid commit timestamp")
)

// FormatError means git did not print exactly the expected number of lines
type FormatError struct {
	Lines int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format printed by git did not meet expectations: expected %d lines but got %d", logLines, e.Lines)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// TimestampError means the commit date line could not be parsed
type TimestampError struct {
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("invalid commit timestamp %q: %v", e.Value, e.Err)
}

func (e *TimestampError) Is(target error) bool {
	return target == ErrTimestamp
}

func (e *TimestampError) Unwrap() error {
	return e.Err
}

// WriteError means a generated file could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "writing " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
