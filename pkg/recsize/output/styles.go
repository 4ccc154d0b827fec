package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jamesainslie/recsize/pkg/recsize/engine"
)

// Color constants using ANSI 256-color palette.
// These provide a consistent color scheme across all formatters.
const (
	// ColorPrimary is used for primary elements like headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for the recommendation and best rows (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for warning messages (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorMuted is used for less important or secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// bucketColors assigns one color per size bucket, in bucket table order.
// Candidates reuse the color of the bucket whose range they start.
var bucketColors = [...]lipgloss.Color{
	lipgloss.Color("1"),   // <1K
	lipgloss.Color("2"),   // 1K–2K
	lipgloss.Color("3"),   // 2K–4K
	lipgloss.Color("4"),   // 4K–8K
	lipgloss.Color("5"),   // 8K–16K
	lipgloss.Color("6"),   // 16K–32K
	lipgloss.Color("9"),   // 32K–64K
	lipgloss.Color("10"),  // 64K–128K
	lipgloss.Color("11"),  // 128K–256K
	lipgloss.Color("12"),  // 256K–512K
	lipgloss.Color("13"),  // 512K–1M
	lipgloss.Color("14"),  // 1M–2M
	lipgloss.Color("7"),   // 2M–4M
	lipgloss.Color("8"),   // 4M–8M
	lipgloss.Color("208"), // 8M–16M
	lipgloss.Color("141"), // >16M
}

// BucketStyle returns the style for a bucket label.
func BucketStyle(label string) lipgloss.Style {
	for i, b := range engine.Buckets {
		if b.Label == label {
			return lipgloss.NewStyle().Foreground(bucketColors[i])
		}
	}
	return lipgloss.NewStyle()
}

// CandidateStyle returns the style for a candidate label. A candidate is
// colored like the bucket its byte value falls in.
func CandidateStyle(c engine.Candidate) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(bucketColors[engine.ClassifyIndex(c.Bytes)])
}

// Box styles for containing grouped content.
var (
	// HeaderBox is the style for the header section containing scan info.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// RecommendationBox is the style for the final recordsize value.
	RecommendationBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSuccess).
				Padding(0, 4).
				Bold(true).
				Foreground(ColorSuccess)
)

// Text styles for various content types.
var (
	// TitleStyle is used for major section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle is used for field labels (e.g., "Source:", "Files:").
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// SuccessStyle is used for the minimum-overhead row.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// WarningStyle is used for warning text.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// MutedStyle is used for less important text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// TableHeaderStyle is used for table column headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMuted)
)
