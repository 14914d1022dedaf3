// Package textutil provides the small string helpers used to turn header text
// into filesystem names.
//
// Names are NFC-normalized and stripped of every whitespace rune so that the
// same reservoir always maps to the same directory, and IsPathSegment guards
// against names that would nest or escape the destination root.
package textutil
