//go:build unix

package scanner

import "golang.org/x/sys/unix"

// fsBlockSize returns the block size of the filesystem holding path,
// or 0 if it cannot be determined. The report shows it next to the
// recommendation so operators can compare against the current setting.
func fsBlockSize(path string) int64 {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0
	}
	return int64(stat.Bsize)
}
