package output

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// PrettyFormatter formats the report with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	w.WriteString(TitleStyle.Render("File Size Breakdown"))
	w.WriteString("\n")
	w.WriteString(f.formatDistribution(r))
	w.WriteString("\n")

	w.WriteString(TitleStyle.Render("Wasted Space Analysis"))
	w.WriteString("\n")
	w.WriteString(f.formatWaste(r))
	w.WriteString("\n")

	w.WriteString(TitleStyle.Render("Mode Selection"))
	w.WriteString(MutedStyle.Render("  (buckets consumed until 50% of files)"))
	w.WriteString("\n")
	w.WriteString(f.formatModeTrace(r))
	w.WriteString("\n")

	w.WriteString(TitleStyle.Render("Statistics"))
	w.WriteString("\n")
	w.WriteString(f.formatStats(r))
	w.WriteString("\n")

	w.WriteString(f.formatRecommendation(r))
	return nil
}

// formatHeader builds the header box with scan metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%s %s",
		LabelStyle.Render("Source:"),
		ValueStyle.Render(r.Source)))

	info := fmt.Sprintf("%s %s",
		LabelStyle.Render("Scanned:"),
		ValueStyle.Render(fmt.Sprintf("%d files, %d dirs in %s",
			r.Report.Stats.TotalFiles, r.Report.Stats.TotalDirs, r.Elapsed.Round(time.Millisecond))))
	if r.FSBlockSize > 0 {
		info += fmt.Sprintf("  %s %s",
			LabelStyle.Render("FS block:"),
			ValueStyle.Render(types.FormatSize(r.FSBlockSize)))
	}
	lines = append(lines, info)

	if r.ScanErrors > 0 {
		lines = append(lines, WarningStyle.Render(
			fmt.Sprintf("%d entries skipped due to errors", r.ScanErrors)))
	}

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatDistribution builds the bucket distribution table.
func (f *PrettyFormatter) formatDistribution(r *Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		TableHeaderStyle.Render(padRight("File Sizes", bucketColWidth)),
		TableHeaderStyle.Render(padLeft("Files", countColWidth)),
		TableHeaderStyle.Render(padLeft("Percent ↓", percentColWidth))))

	for _, share := range r.Report.Distribution {
		label := BucketStyle(share.Bucket.Label).Render(padRight(share.Bucket.Label, bucketColWidth))
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			label,
			padLeft(fmt.Sprintf("%d", share.Count), countColWidth),
			padLeft(fmt.Sprintf("%.2f%%", share.Percent), percentColWidth)))
	}

	return sb.String()
}

// formatWaste builds the per-candidate waste table with the
// minimum-overhead row highlighted.
func (f *PrettyFormatter) formatWaste(r *Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		TableHeaderStyle.Render(padRight("Candidate", bucketColWidth)),
		TableHeaderStyle.Render(padLeft("Total Wasted", wasteColWidth)),
		TableHeaderStyle.Render(padLeft("Overhead ↑", percentColWidth))))

	for i, row := range r.Report.Waste {
		label := CandidateStyle(row.Candidate).Render(padRight(row.Candidate.Label, bucketColWidth))
		overhead := padLeft(formatOverhead(row.Overhead), percentColWidth)
		if i == r.Report.BestWasteIndex {
			overhead = SuccessStyle.Render(overhead)
		}
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			label,
			padLeft(humanize.IBytes(uint64(row.WasteBytes)), wasteColWidth),
			overhead))
	}

	return sb.String()
}

// formatModeTrace lists the buckets consumed toward the 50% threshold.
func (f *PrettyFormatter) formatModeTrace(r *Result) string {
	var sb strings.Builder

	for _, e := range r.Report.ModeTrace {
		sb.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
			BucketStyle(e.Bucket.Label).Render(padRight(e.Bucket.Label, bucketColWidth)),
			MutedStyle.Render("->"),
			CandidateStyle(e.Candidate).Render(padRight(e.Candidate.Label, 5)),
			MutedStyle.Render(fmt.Sprintf("(%d files)", e.Count))))
	}
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Accumulated:"),
		ValueStyle.Render(fmt.Sprintf("%d of %d files", r.Report.ModeCumulative, r.Report.Stats.TotalFiles))))

	return sb.String()
}

// formatStats builds the statistics block.
func (f *PrettyFormatter) formatStats(r *Result) string {
	var sb strings.Builder

	stats := r.Report.Stats
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Total files:      "),
		ValueStyle.Render(fmt.Sprintf("%d", stats.TotalFiles))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Total directories:"),
		ValueStyle.Render(fmt.Sprintf("%d", stats.TotalDirs))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Total size:       "),
		ValueStyle.Render(types.FormatSize(stats.TotalBytes))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Average file size:"),
		ValueStyle.Render(humanize.IBytes(uint64(stats.AverageSize)))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Median file size: "),
		ValueStyle.Render(humanize.IBytes(uint64(stats.MedianSize)))))

	return sb.String()
}

// formatRecommendation builds the final recommendation section.
func (f *PrettyFormatter) formatRecommendation(r *Result) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Recommendation"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Mode candidate (50% accumulation):  "),
		ValueStyle.Render(r.Report.Mode.Label)))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		LabelStyle.Render("Wasted space candidate (min overhead):"),
		ValueStyle.Render(r.Report.WasteOptimal.Label)))
	sb.WriteString(MutedStyle.Render("  Recommended recordsize for a dataset like this:"))
	sb.WriteString("\n")
	sb.WriteString(RecommendationBox.Render(r.Report.Final.Label))
	sb.WriteString("\n")

	return sb.String()
}

// Column widths for the pretty tables.
const (
	bucketColWidth  = 12
	countColWidth   = 10
	percentColWidth = 10
	wasteColWidth   = 14
)

// formatOverhead renders an overhead percentage, using "inf" for
// candidates that allocated nothing.
func formatOverhead(overhead float64) string {
	if math.IsInf(overhead, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f%%", overhead)
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// padRight pads a string with spaces on the right to achieve the desired width.
func padRight(s string, width int) string {
	// Bucket labels use a multi-byte en dash; count runes, not bytes.
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
