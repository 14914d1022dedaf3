// Package faults defines the error markers shared by the reorganization
// pipeline.
//
// Components wrap failures with Wrap so callers can classify them with
// errors.Is against ErrConflict, ErrFormat, or ErrIO while the message keeps
// the component and operation that failed.
package faults
