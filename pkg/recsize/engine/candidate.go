package engine

import (
	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// Candidate is one of the fixed recordsize values the analyzer evaluates.
type Candidate struct {
	// Label is the short human form, e.g. "128K" or "1M".
	Label string

	// Bytes is the recordsize in bytes.
	Bytes int64
}

// Candidates is the complete, closed enumeration of recordsize values the
// analyzer searches, in ascending order. Values above 1M assume the pool has
// large_blocks enabled.
var Candidates = [...]Candidate{
	{"8K", 8 * types.KiB},
	{"16K", 16 * types.KiB},
	{"32K", 32 * types.KiB},
	{"64K", 64 * types.KiB},
	{"128K", 128 * types.KiB},
	{"256K", 256 * types.KiB},
	{"512K", 512 * types.KiB},
	{"1M", 1 * types.MiB},
	{"2M", 2 * types.MiB},
	{"4M", 4 * types.MiB},
	{"8M", 8 * types.MiB},
	{"16M", 16 * types.MiB},
}

// OutputLadder is the set of recordsizes a recommendation may resolve to,
// in ascending order. It deliberately omits 8K: a combined recommendation
// of 8K is rounded up to 16K.
var OutputLadder = [...]Candidate{
	{"16K", 16 * types.KiB},
	{"32K", 32 * types.KiB},
	{"64K", 64 * types.KiB},
	{"128K", 128 * types.KiB},
	{"256K", 256 * types.KiB},
	{"512K", 512 * types.KiB},
	{"1M", 1 * types.MiB},
	{"2M", 2 * types.MiB},
	{"4M", 4 * types.MiB},
	{"8M", 8 * types.MiB},
	{"16M", 16 * types.MiB},
}

// CandidateByLabel returns the candidate with the given label.
// Unknown labels return a zero Candidate.
func CandidateByLabel(label string) Candidate {
	for _, c := range Candidates {
		if c.Label == label {
			return c
		}
	}
	return Candidate{}
}

// QuantizeToLadder returns the smallest OutputLadder entry whose byte value
// is at least b, clamping to the 16M top rung.
func QuantizeToLadder(b int64) Candidate {
	for _, c := range OutputLadder {
		if b <= c.Bytes {
			return c
		}
	}
	return OutputLadder[len(OutputLadder)-1]
}
