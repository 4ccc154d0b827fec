package output

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
)

// MarkdownFormatter formats the report as GitHub-flavored Markdown tables,
// suitable for pasting into issues or runbooks.
type MarkdownFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *MarkdownFormatter) Format(w *bytes.Buffer, r *Result) error {
	fmt.Fprintf(w, "## Recordsize analysis: %s\n\n", r.Source)

	w.WriteString("### File size breakdown\n\n")
	w.WriteString("| Bucket | Files | Percent |\n")
	w.WriteString("|--------|------:|--------:|\n")
	for _, share := range r.Report.Distribution {
		fmt.Fprintf(w, "| %s | %d | %.2f%% |\n", share.Bucket.Label, share.Count, share.Percent)
	}

	w.WriteString("\n### Wasted space analysis\n\n")
	w.WriteString("| Candidate | Total wasted | Overhead |\n")
	w.WriteString("|-----------|-------------:|---------:|\n")
	for i, row := range r.Report.Waste {
		label := row.Candidate.Label
		if i == r.Report.BestWasteIndex {
			label = "**" + label + "**"
		}
		fmt.Fprintf(w, "| %s | %s | %s |\n",
			label, humanize.IBytes(uint64(row.WasteBytes)), formatOverhead(row.Overhead))
	}

	stats := r.Report.Stats
	w.WriteString("\n### Recommendation\n\n")
	fmt.Fprintf(w, "- Mode candidate: `%s`\n", r.Report.Mode.Label)
	fmt.Fprintf(w, "- Wasted space candidate: `%s`\n", r.Report.WasteOptimal.Label)
	fmt.Fprintf(w, "- **Recommended recordsize: `%s`**\n", r.Report.Final.Label)
	fmt.Fprintf(w, "\n%d files, %d directories, %s total.\n",
		stats.TotalFiles, stats.TotalDirs, humanize.IBytes(uint64(stats.TotalBytes)))

	return nil
}

func init() {
	Register("markdown", func() Formatter {
		return &MarkdownFormatter{}
	})
}

// Ensure MarkdownFormatter implements Formatter.
var _ Formatter = (*MarkdownFormatter)(nil)
