package preflight

import (
	"strings"

	"resorg/internal/faults"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Err converts a failed result into an error tagged with faults.ErrIO.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return faults.Wrap(faults.ErrIO, "preflight", strings.ToLower(r.Name), r.Detail, nil)
}

// FirstFailure returns the error for the first failed result, or nil.
func FirstFailure(results ...Result) error {
	for _, r := range results {
		if err := r.Err(); err != nil {
			return err
		}
	}
	return nil
}
