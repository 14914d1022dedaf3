// Package layout owns the destination tree shape: every organized file lives
// at <root>/<reservoir>/<reservoir>_<year>.txt.
//
// EnsureDir is the destination verifier used both for the root and for each
// reservoir directory. It is idempotent and reports occupied names as
// conflicts rather than replacing them.
package layout
