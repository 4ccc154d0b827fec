package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// writeFile creates a file of the given size under dir.
func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestScanner_CollectsAllSizes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.txt", 500)
	writeFile(t, root, "sub/medium.bin", 5000)
	writeFile(t, root, "sub/deep/large.dat", 100000)
	writeFile(t, root, "empty.log", 0)

	s := New(Options{Root: root})
	result, err := s.Scan(context.Background())
	require.NoError(t, err)

	sizes := append([]int64(nil), result.Sizes...)
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	assert.Equal(t, []int64{0, 500, 5000, 100000}, sizes)

	assert.Equal(t, int64(4), result.FilesScanned)
	assert.Equal(t, int64(2), result.DirsScanned)
	assert.Equal(t, int64(105500), result.TotalSize)
	assert.Empty(t, result.Errors)
}

func TestScanner_EmptyTree(t *testing.T) {
	root := t.TempDir()

	s := New(Options{Root: root})
	result, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Sizes)
	assert.Equal(t, int64(0), result.FilesScanned)
	assert.Equal(t, int64(0), result.TotalSize)
}

func TestScanner_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt", 100)
	writeFile(t, root, "skip.tmp", 200)
	writeFile(t, root, "node_modules/dep.js", 300)

	s := New(Options{
		Root:    root,
		Exclude: []string{"*.tmp", "node_modules"},
	})
	result, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{100}, result.Sizes)
	assert.Equal(t, int64(1), result.FilesScanned)
}

func TestScanner_RootNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, root, "plain.txt", 10)

	s := New(Options{Root: file})
	_, err := s.Scan(context.Background())
	assert.Error(t, err)
}

func TestScanner_RootDoesNotExist(t *testing.T) {
	s := New(Options{Root: filepath.Join(t.TempDir(), "missing")})
	_, err := s.Scan(context.Background())
	assert.Error(t, err)
}

func TestScanner_ReportsProgress(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 100)
	writeFile(t, root, "b.txt", 100)

	var mu sync.Mutex
	var calls int
	s := New(Options{
		Root: root,
		OnProgress: func(p types.ScanProgress) {
			mu.Lock()
			calls++
			mu.Unlock()
		},
	})
	_, err := s.Scan(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	// At least the forced initial report fires.
	assert.GreaterOrEqual(t, calls, 1)
}

func TestScanner_SymlinksNotFollowed(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	writeFile(t, target, "outside.dat", 4096)
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))
	writeFile(t, root, "inside.txt", 100)

	s := New(Options{Root: root})
	result, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{100}, result.Sizes)
}

func TestScanner_FSBlockSizeReported(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 10)

	s := New(Options{Root: root})
	result, err := s.Scan(context.Background())
	require.NoError(t, err)

	// On unix platforms Statfs should succeed for a temp dir.
	assert.GreaterOrEqual(t, result.FSBlockSize, int64(0))
}
