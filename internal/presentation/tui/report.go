package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// MaxReportRows caps the segment table of an inspection report.
const MaxReportRows = 50

// ReportMarkdown summarizes a conversion as markdown: counters, the final pen
// state, skipped commands and the first segments.
func ReportMarkdown(source string, segs []domain.LineSegment, report *domain.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", source)

	sb.WriteString("| Tokens | Commands | Ignored | Lines | Skipped |\n")
	sb.WriteString("|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&sb, "| %d | %d | %d | %d | %d |\n\n",
		report.Tokens, report.Commands, report.Ignored, report.Segments, len(report.Errors))

	fmt.Fprintf(&sb, "Final pen: **%s** at `%s`\n\n", report.Final.Status, report.Final.Position)

	if len(report.Errors) > 0 {
		sb.WriteString("## Skipped commands\n\n")
		for _, err := range report.Errors {
			fmt.Fprintf(&sb, "- `%s`\n", err)
		}
		sb.WriteString("\n")
	}

	if len(segs) == 0 {
		return sb.String()
	}

	sb.WriteString("## Lines\n\n")
	sb.WriteString("| # | Start | End |\n")
	sb.WriteString("|---:|---|---|\n")
	for i, s := range segs {
		if i == MaxReportRows {
			fmt.Fprintf(&sb, "\n_%d more not shown_\n", len(segs)-MaxReportRows)
			break
		}
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", i+1, s.Start, s.End)
	}

	return sb.String()
}
