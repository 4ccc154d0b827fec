package engine

import (
	"math"
	"testing"
)

func TestAnalyzeWaste_OneRowPerCandidate(t *testing.T) {
	results, best := AnalyzeWaste([]int64{500, 8192, 5000000})

	if len(results) != len(Candidates) {
		t.Fatalf("got %d results, want %d", len(results), len(Candidates))
	}
	for i, row := range results {
		if row.Candidate.Label != Candidates[i].Label {
			t.Errorf("results[%d] = %q, want %q", i, row.Candidate.Label, Candidates[i].Label)
		}
		if row.Overhead < 0 {
			t.Errorf("candidate %q has negative overhead %f", row.Candidate.Label, row.Overhead)
		}
		if row.WasteBytes < 0 {
			t.Errorf("candidate %q has negative waste %d", row.Candidate.Label, row.WasteBytes)
		}
	}
	if best < 0 || best >= len(results) {
		t.Fatalf("best index %d out of range", best)
	}
}

func TestAnalyzeWaste_TinyFilesWithOneLargeFile(t *testing.T) {
	// Four 500-byte files and one 5 MB file. Small candidates keep the
	// tiny files on 512-byte blocks and only pay rounding on the large
	// file, so 8K wins.
	sizes := []int64{500, 500, 500, 500, 5000000}
	results, best := AnalyzeWaste(sizes)

	if results[best].Candidate.Label != "8K" {
		t.Errorf("best candidate = %q, want 8K", results[best].Candidate.Label)
	}

	// 4*512 + 611*8192 allocated under 8K.
	row := results[0]
	if row.AllocatedBytes != 4*512+611*8192 {
		t.Errorf("8K allocated = %d, want %d", row.AllocatedBytes, 4*512+611*8192)
	}
	if row.WasteBytes != 4*12+(611*8192-5000000) {
		t.Errorf("8K waste = %d, want %d", row.WasteBytes, 4*12+(611*8192-5000000))
	}

	// The best row must be the numeric argmin over all rows.
	for _, r := range results {
		if r.Overhead < results[best].Overhead {
			t.Errorf("candidate %q overhead %.4f beats reported best %.4f",
				r.Candidate.Label, r.Overhead, results[best].Overhead)
		}
	}
}

func TestAnalyzeWaste_AllZeroByteFiles(t *testing.T) {
	// Nothing allocates, every overhead is infinite, and the tie goes to
	// the first (smallest) candidate.
	results, best := AnalyzeWaste([]int64{0, 0, 0})

	for _, row := range results {
		if !math.IsInf(row.Overhead, 1) {
			t.Errorf("candidate %q overhead = %f, want +Inf", row.Candidate.Label, row.Overhead)
		}
	}
	if best != 0 {
		t.Errorf("best = %d, want 0 (smallest candidate wins ties)", best)
	}
}

func TestAnalyzeWaste_UniformFilesTieBreaksSmallest(t *testing.T) {
	// 512-byte files allocate exactly 512 bytes under every candidate:
	// zero overhead across the board, so the smallest candidate wins.
	results, best := AnalyzeWaste([]int64{512, 512})

	if results[best].Candidate.Label != "8K" {
		t.Errorf("best candidate = %q, want 8K", results[best].Candidate.Label)
	}
	if results[best].Overhead != 0 {
		t.Errorf("best overhead = %f, want 0", results[best].Overhead)
	}
}
