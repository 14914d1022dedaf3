// Package placement copies or moves reservoir data files into the organized
// destination tree.
//
// Engine.Place handles one file: it parses the header, makes sure the
// reservoir directory exists, applies the overwrite policy and free-space
// preflight, then copies or moves the file to
// <dest>/<reservoir>/<reservoir>_<year>.txt. Engine.Run drives a batch in
// caller order, optionally under an advisory lock on the destination, and
// either stops at the first failure or collects failures when KeepGoing is
// set.
package placement
