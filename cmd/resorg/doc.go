// Command resorg sorts reservoir storage data files into a directory tree
// keyed by reservoir name.
//
//	resorg [flags] DEST FILE [FILE...]
//
// Each FILE is copied (or moved with --move) to
// DEST/<reservoir>/<reservoir>_<year>.txt, where the reservoir comes from the
// first header line and the year from the first data row. --show lists every
// .txt file under DEST afterwards. The config subcommands create and check the
// optional TOML configuration file.
package main
