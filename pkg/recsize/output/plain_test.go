package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter_Format(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, testResult(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Source: /tank/data")
	assert.Contains(t, out, "File Size Breakdown:")
	assert.Contains(t, out, "Wasted Space Analysis:")
	assert.Contains(t, out, "Statistics:")
	assert.Contains(t, out, "Recommendation:")

	// Distribution rows for both occupied buckets.
	assert.Contains(t, out, "<1K")
	assert.Contains(t, out, "4M–8M")
	assert.Contains(t, out, "80.00%")

	// The final recommendation from the canonical scenario.
	assert.Contains(t, out, "Recommended recordsize: 16K")
}

func TestPlainFormatter_BestRowFlagged(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	require.NoError(t, formatter.Format(&buf, testResult(t)))

	var flagged []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasSuffix(strings.TrimRight(line, " "), "*") {
			flagged = append(flagged, line)
		}
	}
	require.Len(t, flagged, 1)
	assert.Contains(t, flagged[0], "8K")
}

func TestPlainFormatter_TwelveWasteRows(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	require.NoError(t, formatter.Format(&buf, testResult(t)))

	out := buf.String()
	start := strings.Index(out, "CANDIDATE")
	require.GreaterOrEqual(t, start, 0)
	section := out[start:]
	end := strings.Index(section, "\n\n")
	require.GreaterOrEqual(t, end, 0)

	lines := strings.Split(strings.TrimSpace(section[:end]), "\n")
	// Header plus one row per candidate.
	assert.Len(t, lines, 13)
}
