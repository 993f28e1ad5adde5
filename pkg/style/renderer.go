// Package style renders generation results for the terminal
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/specreport/pkg/generator"
	"github.com/arthur-debert/specreport/pkg/types"
)

// Indicators used when listing unit outcomes
var (
	PassedIndicator = pterm.NewStyle(pterm.FgGreen).Sprint("✓")
	FailedIndicator = pterm.NewStyle(pterm.FgRed).Sprint("✗")
	MutedStyle      = pterm.NewStyle(pterm.FgGray)
	TitleStyle      = pterm.NewStyle(pterm.Bold)
)

// RenderSummary renders the run outcome for the terminal
func RenderSummary(summary *types.RunSummary) string {
	if summary.Empty() {
		return MutedStyle.Sprint("No specs were evaluated")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Sprint("Run results") + "\n\n")

	for _, o := range summary.Outcomes {
		indicator := PassedIndicator
		if !o.Passed {
			indicator = FailedIndicator
		}
		label := o.Feature
		if o.RecordNumber > 0 {
			label = fmt.Sprintf("%s #%d", o.Feature, o.RecordNumber)
		}
		fmt.Fprintf(&b, "  %s %s\n", indicator, label)
	}

	fmt.Fprintf(&b, "\n%d passed, %d failed, %d skipped (%d total)\n",
		summary.Passed, summary.Failed, summary.Skipped, summary.Total)

	return b.String()
}

// RenderReport renders the report-generation outcome for the terminal:
// where each format's reports landed and which units failed, if any.
func RenderReport(report *generator.RunReport) string {
	var b strings.Builder

	for name, files := range report.FeatureFiles {
		fmt.Fprintf(&b, "  %s: %d report(s)", name, len(files))
		if summaryFile, ok := report.SummaryFiles[name]; ok {
			fmt.Fprintf(&b, ", summary at %s", MutedStyle.Sprint(summaryFile))
		}
		b.WriteString("\n")
	}

	for _, ue := range report.Errors {
		fmt.Fprintf(&b, "  %s %s (%s): %v\n", FailedIndicator, ue.Feature, ue.Format, ue.Err)
	}

	return strings.TrimRight(b.String(), "\n")
}
