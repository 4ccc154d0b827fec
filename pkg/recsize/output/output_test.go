package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/recsize/pkg/recsize/engine"
	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// testResult builds a Result from the canonical four-tiny-files-plus-one
// scenario used across the engine tests.
func testResult(t *testing.T) *Result {
	t.Helper()

	res := &types.ScanResult{
		Sizes:        []int64{500, 500, 500, 500, 5000000},
		FilesScanned: 5,
		DirsScanned:  2,
		TotalSize:    5002000,
	}
	report, err := engine.Analyze(res)
	require.NoError(t, err)

	return &Result{
		Report:      report,
		Source:      "/tank/data",
		Elapsed:     125 * time.Millisecond,
		FSBlockSize: 4096,
		ScanErrors:  1,
	}
}

func TestRegistry_KnownFormatters(t *testing.T) {
	for _, name := range []string{"pretty", "plain", "json", "yaml", "markdown"} {
		f, err := Get(name)
		require.NoError(t, err, "formatter %q", name)
		assert.NotNil(t, f)
	}
}

func TestRegistry_UnknownFormatter(t *testing.T) {
	_, err := Get("bogus")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}

func TestRegistry_AvailableSorted(t *testing.T) {
	names := Available()
	assert.Contains(t, names, "pretty")
	assert.Contains(t, names, "json")
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestRegistry_ReplaceAndIsolation(t *testing.T) {
	r := NewRegistry()
	r.Register("plain", func() Formatter { return &PlainFormatter{} })
	f, err := r.Get("plain")
	require.NoError(t, err)
	assert.IsType(t, &PlainFormatter{}, f)

	// A fresh registry does not see the default registrations.
	_, err = r.Get("pretty")
	assert.Error(t, err)
}
