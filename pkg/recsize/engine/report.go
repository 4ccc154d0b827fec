// Package engine implements the recordsize recommendation engine: bucketed
// size classification, the copy-on-write allocation simulator, waste
// analysis across candidate recordsizes, and the two heuristics
// (frequency-mode and waste-minimizing) combined into one recommendation.
//
// All computation is pure in-memory arithmetic over an already-collected
// sample sequence; nothing here touches a live pool.
package engine

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// ErrNoFiles indicates the scan produced no samples, so no distribution,
// mode, or recommendation can be computed.
var ErrNoFiles = errors.New("no files found")

// Stats summarizes the scanned tree.
type Stats struct {
	TotalFiles int64 `json:"total_files"`
	TotalDirs  int64 `json:"total_dirs"`
	TotalBytes int64 `json:"total_bytes"`

	// AverageSize is TotalBytes / TotalFiles.
	AverageSize float64 `json:"average_size"`

	// MedianSize is the middle sample; for an even sample count it is the
	// mean of the two middle samples.
	MedianSize float64 `json:"median_size"`
}

// Report is the complete structured result of one analysis run. It is
// computed once from the sample sequence and never mutated; the output
// formatters consume it read-only.
type Report struct {
	// RunID uniquely identifies this analysis run.
	RunID string `json:"run_id"`

	// Distribution is the bucket breakdown sorted by percent descending.
	Distribution []BucketShare `json:"distribution"`

	// Waste holds one simulated-allocation row per candidate, in ascending
	// candidate order.
	Waste []WasteResult `json:"waste"`

	// BestWasteIndex is the index into Waste of the minimum-overhead row.
	BestWasteIndex int `json:"best_waste_index"`

	// ModeTrace lists the buckets consumed to reach the 50% threshold.
	ModeTrace []ModeTraceEntry `json:"mode_trace"`

	// ModeCumulative is the running file count reached by ModeTrace.
	ModeCumulative int64 `json:"mode_cumulative"`

	// Mode is the frequency-mode candidate.
	Mode Candidate `json:"mode"`

	// WasteOptimal is the minimum-overhead candidate.
	WasteOptimal Candidate `json:"waste_optimal"`

	// Final is the combined, quantized recommendation.
	Final Candidate `json:"final"`

	Stats Stats `json:"stats"`
}

// Analyze runs the full engine over a completed scan and builds the report.
// Returns ErrNoFiles for an empty scan; no engine computation runs in that
// case.
func Analyze(res *types.ScanResult) (*Report, error) {
	totalFiles := int64(len(res.Sizes))
	if totalFiles == 0 {
		return nil, ErrNoFiles
	}

	counts := CountSizes(res.Sizes)
	waste, best := AnalyzeWaste(res.Sizes)
	mode, trace := SelectMode(counts, totalFiles)

	var cumulative int64
	for _, e := range trace {
		cumulative += e.Count
	}

	return &Report{
		RunID:          uuid.NewString(),
		Distribution:   Distribution(counts, totalFiles),
		Waste:          waste,
		BestWasteIndex: best,
		ModeTrace:      trace,
		ModeCumulative: cumulative,
		Mode:           mode,
		WasteOptimal:   waste[best].Candidate,
		Final:          Combine(mode, waste[best].Candidate),
		Stats: Stats{
			TotalFiles:  totalFiles,
			TotalDirs:   res.DirsScanned,
			TotalBytes:  res.TotalSize,
			AverageSize: float64(res.TotalSize) / float64(totalFiles),
			MedianSize:  median(res.Sizes),
		},
	}, nil
}

// median returns the middle sample size, averaging the two middle samples
// when the count is even. The input slice is not modified.
func median(sizes []int64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	sorted := make([]int64, len(sizes))
	copy(sorted, sizes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
