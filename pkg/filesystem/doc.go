// Package filesystem provides the filesystem used by coloring-tee to open
// output files and bootstrap the per-user configuration.
//
// Two implementations exist: the standard OS filesystem and an afero-backed
// one, which tests use with an in-memory afero.MemMapFs.
package filesystem
