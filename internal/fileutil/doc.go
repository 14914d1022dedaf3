// Package fileutil holds the copy and move primitives used by placement.
package fileutil
