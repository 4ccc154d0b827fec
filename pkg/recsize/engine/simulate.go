package engine

// minBlock is the smallest block a file can allocate. Files below the
// candidate recordsize fall back to power-of-two sub-block allocation
// starting here.
const minBlock int64 = 512

// Simulate returns the bytes a copy-on-write filesystem would allocate for
// a file of the given size under the given candidate recordsize.
//
// Zero-byte files allocate nothing. Files at or above the candidate are
// allocated in whole multiples of it. Smaller files use the smallest
// power-of-two block that covers them, starting at 512 bytes and never
// exceeding the candidate.
//
// Simulate is pure; the waste analyzer calls it once per (file, candidate)
// pair.
func Simulate(fileSize, candidateBytes int64) int64 {
	if fileSize == 0 {
		return 0
	}
	if fileSize >= candidateBytes {
		blocks := (fileSize + candidateBytes - 1) / candidateBytes
		return blocks * candidateBytes
	}
	alloc := minBlock
	for alloc < fileSize && alloc < candidateBytes {
		alloc *= 2
	}
	return alloc
}
