//go:build !unix

package scanner

// fsBlockSize is not supported on this platform.
func fsBlockSize(path string) int64 {
	return 0
}
