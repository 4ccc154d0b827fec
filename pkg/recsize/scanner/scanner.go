package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/jamesainslie/recsize/pkg/recsize/logging"
	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// logger is the package-level logger for scan operations.
var logger = logging.Get("scanner")

// Scanner performs parallel directory scanning using fastwalk.
type Scanner struct {
	opts Options

	// Atomic counters for thread-safe progress reporting.
	dirsScanned  atomic.Int64
	filesScanned atomic.Int64
	bytesScanned atomic.Int64

	// currentPath is the path currently being scanned (for progress).
	currentPath atomic.Value

	// sizes collects one sample per regular file.
	sizes   []int64
	sizesMu sync.Mutex

	// errors collects scan errors without stopping the scan.
	errors   []types.ScanError
	errorsMu sync.Mutex

	// lastProgress tracks when we last reported progress to avoid
	// excessive callbacks.
	lastProgress atomic.Int64

	// root is the resolved absolute path being scanned.
	root string
}

// New creates a new Scanner with the given options.
func New(opts Options) *Scanner {
	s := &Scanner{
		opts:   opts,
		sizes:  make([]int64, 0),
		errors: make([]types.ScanError, 0),
	}
	s.currentPath.Store("")
	return s
}

// Scan walks the tree and returns the complete sample sequence.
// It blocks until the walk finishes or the context is cancelled; the
// engine must only see results from a completed traversal.
func (s *Scanner) Scan(ctx context.Context) (*types.ScanResult, error) {
	startTime := time.Now()

	root, err := s.validateRoot()
	if err != nil {
		return nil, err
	}
	s.root = root

	s.currentPath.Store(root)
	s.reportProgressForce()

	logger.Info("scan started", "root", root)

	if err := s.executeWalk(ctx); err != nil {
		return nil, err
	}

	result := &types.ScanResult{
		Sizes:        s.sizes,
		FilesScanned: s.filesScanned.Load(),
		DirsScanned:  s.dirsScanned.Load(),
		TotalSize:    s.bytesScanned.Load(),
		FSBlockSize:  fsBlockSize(root),
		Elapsed:      time.Since(startTime),
		Errors:       s.errors,
	}

	logger.Info("scan finished",
		"files", result.FilesScanned,
		"dirs", result.DirsScanned,
		"bytes", result.TotalSize,
		"errors", len(result.Errors),
		"elapsed", result.Elapsed)

	return result, nil
}

// validateRoot resolves the root path to absolute and verifies it exists.
func (s *Scanner) validateRoot() (string, error) {
	root, err := filepath.Abs(s.opts.Root)
	if err != nil {
		return "", err
	}

	rootInfo, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !rootInfo.IsDir() {
		return "", os.ErrInvalid
	}

	return root, nil
}

// executeWalk runs fastwalk from the root.
func (s *Scanner) executeWalk(ctx context.Context) error {
	conf := fastwalk.Config{
		Follow: false, // Don't follow symlinks.
	}

	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		<-walkCtx.Done()
		close(done)
	}()

	walkErr := fastwalk.Walk(&conf, s.root, s.walkCallback(done))
	if walkErr != nil && !errors.Is(walkErr, context.Canceled) && !errors.Is(walkErr, fastwalk.ErrSkipFiles) {
		return walkErr
	}
	return nil
}

// walkCallback returns the callback function for fastwalk.Walk.
func (s *Scanner) walkCallback(done <-chan struct{}) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		select {
		case <-done:
			return fastwalk.ErrSkipFiles
		default:
		}

		// Handle errors gracefully - record and continue.
		if err != nil {
			s.addError(path, err)
			return nil
		}

		if s.isExcluded(path) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// The root itself is not counted, matching what a recursive
			// directory listing of the tree would report.
			if path != s.root {
				s.dirsScanned.Add(1)
			}
			s.currentPath.Store(path)
			s.reportProgress()
			return nil
		}

		if d.Type().IsRegular() {
			s.processFile(path, d)
		}

		return nil
	}
}

// processFile handles a regular file entry.
func (s *Scanner) processFile(path string, d fs.DirEntry) {
	info, err := d.Info()
	if err != nil {
		// Raced deletion or permission change: skip, never surface.
		s.addError(path, err)
		return
	}

	size := info.Size()

	s.filesScanned.Add(1)
	s.bytesScanned.Add(size)

	s.sizesMu.Lock()
	s.sizes = append(s.sizes, size)
	s.sizesMu.Unlock()
}

// addError adds an error to the error list thread-safely.
func (s *Scanner) addError(path string, err error) {
	logger.Debug("skipping entry", "path", path, "error", err)
	s.errorsMu.Lock()
	s.errors = append(s.errors, types.ScanError{
		Path:  path,
		Error: err.Error(),
	})
	s.errorsMu.Unlock()
}

// reportProgress calls the progress callback if configured.
// Throttles calls to avoid excessive overhead.
func (s *Scanner) reportProgress() {
	if s.opts.OnProgress == nil {
		return
	}

	// Throttle progress updates to every 10ms.
	now := time.Now().UnixMilli()
	last := s.lastProgress.Load()
	if now-last < 10 {
		return
	}
	if !s.lastProgress.CompareAndSwap(last, now) {
		return // Another goroutine updated it.
	}

	s.sendProgress()
}

// reportProgressForce calls the progress callback immediately, bypassing
// the throttle. Use for important state changes like scan start.
func (s *Scanner) reportProgressForce() {
	if s.opts.OnProgress == nil {
		return
	}
	s.lastProgress.Store(time.Now().UnixMilli())
	s.sendProgress()
}

// sendProgress sends the current progress to the callback.
func (s *Scanner) sendProgress() {
	currentPath, _ := s.currentPath.Load().(string)

	s.opts.OnProgress(types.ScanProgress{
		DirsScanned:  s.dirsScanned.Load(),
		FilesScanned: s.filesScanned.Load(),
		BytesScanned: s.bytesScanned.Load(),
		CurrentPath:  currentPath,
	})
}

// isExcluded checks if a path matches any exclusion pattern.
func (s *Scanner) isExcluded(path string) bool {
	for _, pattern := range s.opts.Exclude {
		if s.matchesExclusionPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchesExclusionPattern checks if a path matches a single exclusion pattern.
func (s *Scanner) matchesExclusionPattern(path, pattern string) bool {
	if pattern == "" {
		return false
	}

	// Check if the path starts with the exclusion pattern (for directories).
	if len(path) >= len(pattern) {
		if path == pattern {
			return true
		}
		if len(path) > len(pattern) && path[:len(pattern)+1] == pattern+string(filepath.Separator) {
			return true
		}
	}

	// Try glob matching against basename.
	if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
		return true
	}

	// Try matching against full path.
	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	return false
}
