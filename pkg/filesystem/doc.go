// Package filesystem provides the filesystem used for svnext scratch files.
//
// Both implementations are backed by afero: NewOS writes to disk and
// NewMemory keeps everything in memory for tests.
package filesystem
