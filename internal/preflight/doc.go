// Package preflight provides filesystem readiness checks run before files are
// placed.
//
// These checks run in two places:
//   - Before the batch starts, the destination root must be readable and
//     writable.
//   - Before each copy, the filesystem receiving the file must have room for
//     it plus the configured headroom. Same-filesystem moves are exempt.
package preflight
