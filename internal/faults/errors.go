package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConflict marks a destination path occupied by something that is not a directory,
	// or a target file the overwrite policy refuses to replace.
	ErrConflict = errors.New("destination conflict")
	// ErrFormat marks a source file whose header does not match the expected layout.
	ErrFormat = errors.New("format error")
	// ErrIO marks filesystem failures surfaced while copying or moving.
	ErrIO = errors.New("i/o error")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short label for the marker carried by err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrFormat):
		return "format"
	default:
		return "io"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
