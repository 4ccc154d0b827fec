package engine

import "sort"

// bucketCandidates maps each bucket (by Buckets index) to its suggested
// candidate recordsize. Static configuration, used only by SelectMode:
// buckets below 8K suggest the 8K floor, power-of-two buckets in between
// suggest the matching candidate, and everything at or above 2M caps the
// suggestion at 1M.
var bucketCandidates = [len(Buckets)]string{
	"8K",   // <1K
	"8K",   // 1K–2K
	"8K",   // 2K–4K
	"8K",   // 4K–8K
	"16K",  // 8K–16K
	"16K",  // 16K–32K
	"32K",  // 32K–64K
	"64K",  // 64K–128K
	"128K", // 128K–256K
	"256K", // 256K–512K
	"512K", // 512K–1M
	"1M",   // 1M–2M
	"1M",   // 2M–4M
	"1M",   // 4M–8M
	"1M",   // 8M–16M
	"1M",   // >16M
}

// ModeTraceEntry is one bucket consumed while accumulating toward the
// 50% threshold.
type ModeTraceEntry struct {
	Bucket    Bucket    `json:"bucket"`
	Candidate Candidate `json:"candidate"`
	Count     int64     `json:"count"`
}

// SelectMode derives the frequency-mode candidate: buckets are ranked by
// file count descending and consumed until they cover at least half of
// totalFiles, then the largest candidate suggested by any consumed bucket
// wins. Buckets with equal counts rank smaller range first.
//
// It returns the winning candidate and the ordered trace of consumed
// buckets. totalFiles must be positive; callers short-circuit empty scans
// before reaching the engine.
func SelectMode(counts BucketCounts, totalFiles int64) (Candidate, []ModeTraceEntry) {
	ranked := make([]int, 0, len(Buckets))
	for i, n := range counts {
		if n > 0 {
			ranked = append(ranked, i)
		}
	}
	// Stable over the ascending bucket table: ties keep range order.
	sort.SliceStable(ranked, func(a, b int) bool {
		return counts[ranked[a]] > counts[ranked[b]]
	})

	var cumulative int64
	trace := make([]ModeTraceEntry, 0, len(ranked))
	for _, i := range ranked {
		cumulative += counts[i]
		trace = append(trace, ModeTraceEntry{
			Bucket:    Buckets[i],
			Candidate: CandidateByLabel(bucketCandidates[i]),
			Count:     counts[i],
		})
		// Integer form of cumulative >= 50% of totalFiles.
		if cumulative*2 >= totalFiles {
			break
		}
	}

	best := trace[0].Candidate
	for _, e := range trace[1:] {
		if e.Candidate.Bytes > best.Bytes {
			best = e.Candidate
		}
	}
	return best, trace
}
