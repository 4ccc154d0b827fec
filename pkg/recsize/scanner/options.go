// Package scanner walks a directory tree and collects the file-size
// samples the recommendation engine consumes. It uses fastwalk for
// parallel traversal with atomic counters for progress reporting.
//
// Scan errors (permission denied, broken symlinks, files deleted mid-walk)
// are collected and skipped; the engine only ever sees the sizes of files
// that could be examined.
package scanner

import (
	"github.com/jamesainslie/recsize/pkg/recsize/config"
	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// Options configures the scanner behavior.
type Options struct {
	// Root is the starting directory for the scan.
	Root string

	// Exclude contains glob patterns for paths to skip during scanning.
	// Patterns are matched against the full path and the basename.
	Exclude []string

	// OnProgress is called periodically with scan progress updates.
	// It must be safe to call from multiple goroutines.
	OnProgress func(types.ScanProgress)
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Root:    config.DefaultPath,
		Exclude: config.DefaultExclusions,
	}
}
