// Package filesystem provides the on-disk document store and watcher.
//
// Documents are the files of one directory whose names end in the configured
// extension. Subdirectories are ignored. Writes go through a temporary file
// in the same directory and a rename, so a document is either fully old or
// fully new. A per-directory advisory lock keeps two batch runs apart.
package filesystem
