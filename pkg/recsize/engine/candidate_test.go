package engine

import "testing"

func TestCandidates_AscendingAndRoundTrip(t *testing.T) {
	for i, c := range Candidates {
		if got := CandidateByLabel(c.Label); got.Bytes != c.Bytes {
			t.Errorf("CandidateByLabel(%q).Bytes = %d, want %d", c.Label, got.Bytes, c.Bytes)
		}
		if i > 0 && Candidates[i-1].Bytes*2 != c.Bytes {
			t.Errorf("candidate %q is not double of %q", c.Label, Candidates[i-1].Label)
		}
	}
}

func TestOutputLadder_RoundTripAndNoEightK(t *testing.T) {
	for _, c := range OutputLadder {
		if got := QuantizeToLadder(c.Bytes); got.Bytes != c.Bytes {
			t.Errorf("QuantizeToLadder(%d) = %d, want itself", c.Bytes, got.Bytes)
		}
		if c.Label == "8K" {
			t.Error("output ladder must not contain 8K")
		}
	}
	if len(OutputLadder) != len(Candidates)-1 {
		t.Errorf("ladder has %d rungs, want %d", len(OutputLadder), len(Candidates)-1)
	}
}

func TestQuantizeToLadder(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "below ladder", bytes: 8 * 1024, want: "16K"},
		{name: "exact rung", bytes: 128 * 1024, want: "128K"},
		{name: "between rungs", bytes: 130 * 1024, want: "256K"},
		{name: "top rung", bytes: 16 * 1024 * 1024, want: "16M"},
		{name: "above top clamps", bytes: 64 * 1024 * 1024, want: "16M"},
		{name: "tiny", bytes: 1, want: "16K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeToLadder(tt.bytes); got.Label != tt.want {
				t.Errorf("QuantizeToLadder(%d) = %q, want %q", tt.bytes, got.Label, tt.want)
			}
		})
	}
}

func TestCandidateByLabel_Unknown(t *testing.T) {
	if got := CandidateByLabel("3K"); got.Bytes != 0 {
		t.Errorf("CandidateByLabel(unknown) = %+v, want zero value", got)
	}
}
