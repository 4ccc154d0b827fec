package engine

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		waste string
		want  string
	}{
		{name: "both 8K rounds up", mode: "8K", waste: "8K", want: "16K"},
		{name: "mode larger", mode: "128K", waste: "16K", want: "128K"},
		{name: "waste larger", mode: "16K", waste: "1M", want: "1M"},
		{name: "equal mid ladder", mode: "256K", waste: "256K", want: "256K"},
		{name: "top of ladder", mode: "1M", waste: "16M", want: "16M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(CandidateByLabel(tt.mode), CandidateByLabel(tt.waste))
			if got.Label != tt.want {
				t.Errorf("Combine(%s, %s) = %q, want %q", tt.mode, tt.waste, got.Label, tt.want)
			}
		})
	}
}

func TestCombine_AlwaysOnLadder(t *testing.T) {
	onLadder := func(c Candidate) bool {
		for _, l := range OutputLadder {
			if l.Bytes == c.Bytes {
				return true
			}
		}
		return false
	}

	for _, mode := range Candidates {
		for _, waste := range Candidates {
			if got := Combine(mode, waste); !onLadder(got) {
				t.Errorf("Combine(%s, %s) = %q, not on the output ladder",
					mode.Label, waste.Label, got.Label)
			}
		}
	}
}
