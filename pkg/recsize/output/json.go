package output

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/dustin/go-humanize"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Distribution   []jsonBucketShare  `json:"distribution" yaml:"distribution"`
	Waste          []jsonWasteRow     `json:"waste" yaml:"waste"`
	ModeTrace      []jsonModeEntry    `json:"mode_trace" yaml:"mode_trace"`
	ModeCumulative int64              `json:"mode_cumulative" yaml:"mode_cumulative"`
	Recommendation jsonRecommendation `json:"recommendation" yaml:"recommendation"`
	Stats          jsonStats          `json:"stats" yaml:"stats"`
	Meta           jsonMeta           `json:"meta" yaml:"meta"`
}

// jsonBucketShare is one bucket distribution row.
type jsonBucketShare struct {
	Bucket  string  `json:"bucket" yaml:"bucket"`
	Count   int64   `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// jsonWasteRow is one candidate waste row. Overhead is nil when the
// candidate allocated nothing; encoding/json cannot represent +Inf.
type jsonWasteRow struct {
	Candidate  string   `json:"candidate" yaml:"candidate"`
	Bytes      int64    `json:"candidate_bytes" yaml:"candidate_bytes"`
	Wasted     int64    `json:"wasted_bytes" yaml:"wasted_bytes"`
	WastedText string   `json:"wasted_human" yaml:"wasted_human"`
	Allocated  int64    `json:"allocated_bytes" yaml:"allocated_bytes"`
	Overhead   *float64 `json:"overhead_percent" yaml:"overhead_percent"`
	Best       bool     `json:"best" yaml:"best"`
}

// jsonModeEntry is one consumed bucket in the mode-selection trace.
type jsonModeEntry struct {
	Bucket    string `json:"bucket" yaml:"bucket"`
	Candidate string `json:"candidate" yaml:"candidate"`
	Count     int64  `json:"count" yaml:"count"`
}

// jsonRecommendation holds the engine's final values.
type jsonRecommendation struct {
	Mode         string `json:"mode_candidate" yaml:"mode_candidate"`
	WasteOptimal string `json:"waste_optimal_candidate" yaml:"waste_optimal_candidate"`
	Final        string `json:"final_recordsize" yaml:"final_recordsize"`
	FinalBytes   int64  `json:"final_recordsize_bytes" yaml:"final_recordsize_bytes"`
}

// jsonStats represents scan statistics.
type jsonStats struct {
	TotalFiles  int64   `json:"total_files" yaml:"total_files"`
	TotalDirs   int64   `json:"total_dirs" yaml:"total_dirs"`
	TotalBytes  int64   `json:"total_bytes" yaml:"total_bytes"`
	AverageSize float64 `json:"average_size" yaml:"average_size"`
	MedianSize  float64 `json:"median_size" yaml:"median_size"`
}

// jsonMeta represents run metadata.
type jsonMeta struct {
	RunID       string `json:"run_id" yaml:"run_id"`
	Source      string `json:"source" yaml:"source"`
	Elapsed     string `json:"elapsed" yaml:"elapsed"`
	FSBlockSize int64  `json:"fs_block_size,omitempty" yaml:"fs_block_size,omitempty"`
	ScanErrors  int    `json:"scan_errors,omitempty" yaml:"scan_errors,omitempty"`
}

// JSONFormatter formats the report as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildOutput(r))
}

// buildOutput converts a Result to the structured output form shared by
// the JSON and YAML formatters.
func buildOutput(r *Result) jsonOutput {
	distribution := make([]jsonBucketShare, len(r.Report.Distribution))
	for i, share := range r.Report.Distribution {
		distribution[i] = jsonBucketShare{
			Bucket:  share.Bucket.Label,
			Count:   share.Count,
			Percent: share.Percent,
		}
	}

	waste := make([]jsonWasteRow, len(r.Report.Waste))
	for i, row := range r.Report.Waste {
		var overhead *float64
		if !math.IsInf(row.Overhead, 1) {
			v := row.Overhead
			overhead = &v
		}
		waste[i] = jsonWasteRow{
			Candidate:  row.Candidate.Label,
			Bytes:      row.Candidate.Bytes,
			Wasted:     row.WasteBytes,
			WastedText: humanize.IBytes(uint64(row.WasteBytes)),
			Allocated:  row.AllocatedBytes,
			Overhead:   overhead,
			Best:       i == r.Report.BestWasteIndex,
		}
	}

	trace := make([]jsonModeEntry, len(r.Report.ModeTrace))
	for i, e := range r.Report.ModeTrace {
		trace[i] = jsonModeEntry{
			Bucket:    e.Bucket.Label,
			Candidate: e.Candidate.Label,
			Count:     e.Count,
		}
	}

	return jsonOutput{
		Distribution:   distribution,
		Waste:          waste,
		ModeTrace:      trace,
		ModeCumulative: r.Report.ModeCumulative,
		Recommendation: jsonRecommendation{
			Mode:         r.Report.Mode.Label,
			WasteOptimal: r.Report.WasteOptimal.Label,
			Final:        r.Report.Final.Label,
			FinalBytes:   r.Report.Final.Bytes,
		},
		Stats: jsonStats{
			TotalFiles:  r.Report.Stats.TotalFiles,
			TotalDirs:   r.Report.Stats.TotalDirs,
			TotalBytes:  r.Report.Stats.TotalBytes,
			AverageSize: r.Report.Stats.AverageSize,
			MedianSize:  r.Report.Stats.MedianSize,
		},
		Meta: jsonMeta{
			RunID:       r.Report.RunID,
			Source:      r.Source,
			Elapsed:     r.Elapsed.String(),
			FSBlockSize: r.FSBlockSize,
			ScanErrors:  r.ScanErrors,
		},
	}
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
