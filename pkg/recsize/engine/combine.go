package engine

// Combine merges the two heuristics into the final recommendation: the
// larger of the mode and waste-optimal candidates, quantized upward to the
// output ladder. Because the ladder starts at 16K, an 8K winner still
// resolves to 16K.
func Combine(mode, wasteOptimal Candidate) Candidate {
	final := mode.Bytes
	if wasteOptimal.Bytes > final {
		final = wasteOptimal.Bytes
	}
	return QuantizeToLadder(final)
}
