package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// PlainFormatter formats the report as simple tab-separated tables.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	fmt.Fprintf(w, "Source: %s\n\n", r.Source)

	w.WriteString("File Size Breakdown:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BUCKET\tFILES\tPERCENT")
	for _, share := range r.Report.Distribution {
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\n", share.Bucket.Label, share.Count, share.Percent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	w.WriteString("\nWasted Space Analysis:\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CANDIDATE\tWASTED\tOVERHEAD\tBEST")
	for i, row := range r.Report.Waste {
		best := ""
		if i == r.Report.BestWasteIndex {
			best = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Candidate.Label,
			humanize.IBytes(uint64(row.WasteBytes)),
			formatOverhead(row.Overhead),
			best)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	w.WriteString("\nMode Selection (buckets until 50% of files):\n")
	for _, e := range r.Report.ModeTrace {
		fmt.Fprintf(w, "  %s -> %s (%d files)\n", e.Bucket.Label, e.Candidate.Label, e.Count)
	}
	fmt.Fprintf(w, "  Accumulated: %d of %d files\n",
		r.Report.ModeCumulative, r.Report.Stats.TotalFiles)

	stats := r.Report.Stats
	w.WriteString("\nStatistics:\n")
	fmt.Fprintf(w, "  Total files:       %d\n", stats.TotalFiles)
	fmt.Fprintf(w, "  Total directories: %d\n", stats.TotalDirs)
	fmt.Fprintf(w, "  Total size:        %s\n", types.FormatSize(stats.TotalBytes))
	fmt.Fprintf(w, "  Average file size: %s\n", humanize.IBytes(uint64(stats.AverageSize)))
	fmt.Fprintf(w, "  Median file size:  %s\n", humanize.IBytes(uint64(stats.MedianSize)))

	w.WriteString("\nRecommendation:\n")
	fmt.Fprintf(w, "  Mode candidate:         %s\n", r.Report.Mode.Label)
	fmt.Fprintf(w, "  Wasted space candidate: %s\n", r.Report.WasteOptimal.Label)
	fmt.Fprintf(w, "  Recommended recordsize: %s\n", r.Report.Final.Label)

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
