package engine

import "testing"

func TestSelectMode_SingleDominantBucket(t *testing.T) {
	// Four tiny files reach 80% on the <1K bucket alone.
	counts := CountSizes([]int64{500, 500, 500, 500, 5000000})
	mode, trace := SelectMode(counts, 5)

	if mode.Label != "8K" {
		t.Errorf("mode = %q, want 8K", mode.Label)
	}
	if len(trace) != 1 {
		t.Fatalf("trace has %d entries, want 1", len(trace))
	}
	if trace[0].Bucket.Label != "<1K" || trace[0].Count != 4 {
		t.Errorf("trace[0] = %q/%d, want <1K/4", trace[0].Bucket.Label, trace[0].Count)
	}
}

func TestSelectMode_LargestVisitedCandidateWins(t *testing.T) {
	// <1K and 512K–1M tie at two files each; both are consumed before the
	// threshold and the larger mapped candidate wins.
	sizes := []int64{100, 200, 600000, 700000, 1500000}
	counts := CountSizes(sizes)
	mode, trace := SelectMode(counts, int64(len(sizes)))

	if len(trace) != 2 {
		t.Fatalf("trace has %d entries, want 2", len(trace))
	}
	if mode.Label != "512K" {
		t.Errorf("mode = %q, want 512K", mode.Label)
	}
}

func TestSelectMode_TiedCounts(t *testing.T) {
	// Equal counts in <1K and 8K–16K: the smaller range ranks first and
	// already covers 50%, so the trace stops there.
	sizes := []int64{100, 200, 9000, 10000}
	counts := CountSizes(sizes)
	mode, trace := SelectMode(counts, int64(len(sizes)))

	if len(trace) != 1 {
		t.Fatalf("trace has %d entries, want 1", len(trace))
	}
	if trace[0].Bucket.Label != "<1K" {
		t.Errorf("tied counts ranked %q first, want <1K", trace[0].Bucket.Label)
	}
	if mode.Label != "8K" {
		t.Errorf("mode = %q, want 8K", mode.Label)
	}
}

func TestSelectMode_ThresholdInclusive(t *testing.T) {
	// Exactly 50% counts as reaching the threshold.
	sizes := []int64{9000, 9000, 100, 2000000}
	counts := CountSizes(sizes)
	_, trace := SelectMode(counts, int64(len(sizes)))

	if len(trace) != 1 {
		t.Fatalf("trace has %d entries, want 1", len(trace))
	}
	if trace[0].Bucket.Label != "8K–16K" || trace[0].Count != 2 {
		t.Errorf("trace[0] = %q/%d, want 8K–16K/2", trace[0].Bucket.Label, trace[0].Count)
	}
}

func TestSelectMode_HugeFilesCapAtOneMeg(t *testing.T) {
	// Everything at or above 2M maps to the 1M candidate.
	sizes := []int64{30000000, 30000000, 30000000}
	counts := CountSizes(sizes)
	mode, _ := SelectMode(counts, int64(len(sizes)))

	if mode.Label != "1M" {
		t.Errorf("mode = %q, want 1M", mode.Label)
	}
}

func TestBucketCandidates_CoverEveryBucket(t *testing.T) {
	for i, label := range bucketCandidates {
		if CandidateByLabel(label).Bytes == 0 {
			t.Errorf("bucket %q maps to unknown candidate %q", Buckets[i].Label, label)
		}
	}
}
