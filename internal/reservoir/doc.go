// Package reservoir reads the identifying header of a reservoir storage data
// file.
//
// A data file starts with a "#NAME" line, a comment line that is ignored, and
// then monthly rows whose first token is an MM/YYYY date:
//
//	#NICASIO
//	#Date    Storage (AF)
//	01/2007     22430
//
// Parse returns the reservoir name with all whitespace removed and the year
// of the first data row. Any deviation from that layout is reported as a
// faults.ErrFormat error; read failures are returned as they occur.
package reservoir
