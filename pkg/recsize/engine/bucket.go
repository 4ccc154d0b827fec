package engine

import (
	"math"
	"sort"

	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// Bucket is a fixed half-open byte range [Low, High) used to classify
// file sizes for distribution reporting.
type Bucket struct {
	// Label is the human form of the range, e.g. "4K–8K".
	Label string

	// Low is the inclusive lower bound in bytes.
	Low int64

	// High is the exclusive upper bound in bytes.
	High int64
}

// Buckets is the fixed ordered table of size buckets. The ranges are
// contiguous and partition [0, inf) with no gaps or overlaps; every
// non-negative size maps to exactly one bucket.
var Buckets = [...]Bucket{
	{"<1K", 0, 1 * types.KiB},
	{"1K–2K", 1 * types.KiB, 2 * types.KiB},
	{"2K–4K", 2 * types.KiB, 4 * types.KiB},
	{"4K–8K", 4 * types.KiB, 8 * types.KiB},
	{"8K–16K", 8 * types.KiB, 16 * types.KiB},
	{"16K–32K", 16 * types.KiB, 32 * types.KiB},
	{"32K–64K", 32 * types.KiB, 64 * types.KiB},
	{"64K–128K", 64 * types.KiB, 128 * types.KiB},
	{"128K–256K", 128 * types.KiB, 256 * types.KiB},
	{"256K–512K", 256 * types.KiB, 512 * types.KiB},
	{"512K–1M", 512 * types.KiB, 1 * types.MiB},
	{"1M–2M", 1 * types.MiB, 2 * types.MiB},
	{"2M–4M", 2 * types.MiB, 4 * types.MiB},
	{"4M–8M", 4 * types.MiB, 8 * types.MiB},
	{"8M–16M", 8 * types.MiB, 16 * types.MiB},
	{">16M", 16 * types.MiB, math.MaxInt64},
}

// ClassifyIndex returns the index into Buckets for the given size.
func ClassifyIndex(size int64) int {
	for i, b := range Buckets {
		if size < b.High {
			return i
		}
	}
	return len(Buckets) - 1
}

// Classify maps a byte size to its bucket. Deterministic and total;
// there is no error path.
func Classify(size int64) Bucket {
	return Buckets[ClassifyIndex(size)]
}

// BucketCounts holds one occurrence count per bucket, indexed like Buckets.
type BucketCounts [len(Buckets)]int64

// CountSizes classifies every sample and returns per-bucket counts.
// The count sum equals the sample count.
func CountSizes(sizes []int64) BucketCounts {
	var counts BucketCounts
	for _, s := range sizes {
		counts[ClassifyIndex(s)]++
	}
	return counts
}

// Total returns the sum of all bucket counts.
func (c BucketCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// BucketShare is one row of the size distribution report.
type BucketShare struct {
	Bucket  Bucket  `json:"bucket"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution builds the size distribution from bucket counts, sorted by
// percent descending. Buckets with no files are omitted. The sort is stable
// over the ascending bucket table, so equal percentages list the smaller
// range first. totalFiles must be positive.
func Distribution(counts BucketCounts, totalFiles int64) []BucketShare {
	shares := make([]BucketShare, 0, len(Buckets))
	for i, n := range counts {
		if n == 0 {
			continue
		}
		shares = append(shares, BucketShare{
			Bucket:  Buckets[i],
			Count:   n,
			Percent: float64(n) / float64(totalFiles) * 100,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent > shares[j].Percent
	})
	return shares
}
