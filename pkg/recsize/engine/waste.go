package engine

import "math"

// WasteResult reports the simulated allocation cost of one candidate
// recordsize across all samples.
type WasteResult struct {
	// Candidate is the recordsize this row was simulated with.
	Candidate Candidate `json:"candidate"`

	// WasteBytes is allocated minus actual, summed over all samples.
	WasteBytes int64 `json:"waste_bytes"`

	// AllocatedBytes is the total simulated allocation.
	AllocatedBytes int64 `json:"allocated_bytes"`

	// Overhead is WasteBytes as a percentage of AllocatedBytes.
	// When nothing is allocated it is +Inf, which ranks last.
	Overhead float64 `json:"overhead"`
}

// AnalyzeWaste simulates allocation for every candidate recordsize and
// returns one result per candidate in ascending candidate order, plus the
// index of the minimum-overhead row. Ties go to the earlier (smaller)
// candidate: the scan compares with strict less-than in table order.
func AnalyzeWaste(sizes []int64) (results []WasteResult, best int) {
	results = make([]WasteResult, 0, len(Candidates))
	bestOverhead := math.Inf(1)
	for i, c := range Candidates {
		var waste, allocated int64
		for _, s := range sizes {
			a := Simulate(s, c.Bytes)
			waste += a - s
			allocated += a
		}
		overhead := math.Inf(1)
		if allocated > 0 {
			overhead = float64(waste) / float64(allocated) * 100
		}
		results = append(results, WasteResult{
			Candidate:      c,
			WasteBytes:     waste,
			AllocatedBytes: allocated,
			Overhead:       overhead,
		})
		if overhead < bestOverhead {
			bestOverhead = overhead
			best = i
		}
	}
	return results, best
}
