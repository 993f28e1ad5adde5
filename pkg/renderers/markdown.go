package renderers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/types"
)

// markdownRenderer renders plain-text reports suitable for terminals and
// source forges
type markdownRenderer struct{}

func stepMarker(status types.StepStatus) string {
	switch status {
	case types.StepPassed:
		return "[x]"
	case types.StepFailed:
		return "[!]"
	default:
		return "[ ]"
	}
}

// RenderDetail renders a feature or support detail page
func (r *markdownRenderer) RenderDetail(run types.RunInfo, unit types.FeatureUnit, result *types.ReportResult, crumbs types.Breadcrumb) ([]byte, error) {
	var b strings.Builder

	if len(crumbs) > 0 {
		var parts []string
		for _, c := range crumbs {
			parts = append(parts, fmt.Sprintf("[%s](%s)", c.Label, c.File))
		}
		b.WriteString(strings.Join(parts, " > "))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "# %s\n\n", result.Spec.Name)
	if result.Spec.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", result.Spec.Description)
	}

	for _, sc := range result.Spec.Scenarios {
		fmt.Fprintf(&b, "## %s\n\n", sc.Name)
		for _, st := range sc.Steps {
			fmt.Fprintf(&b, "- %s %s\n", stepMarker(st.Status), st.Text)
			if st.Error != "" {
				fmt.Fprintf(&b, "  - error: %s\n", st.Error)
			}
		}
		b.WriteString("\n")
	}

	if len(result.Support) > 0 {
		b.WriteString("## Support specs\n\n")
		for i, sup := range result.Support {
			file := sup.File(format.Markdown.Name())
			if file == "" {
				continue
			}
			fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, sup.Spec.Name, supportLink(file))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// RenderSummary renders the run summary index
func (r *markdownRenderer) RenderSummary(run types.RunInfo, summary *types.RunSummary) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", run.Title)
	fmt.Fprintf(&b, "%d passed, %d failed, %d skipped (%d total)\n\n",
		summary.Passed, summary.Failed, summary.Skipped, summary.Total)

	b.WriteString("| Feature | Result |\n|---|---|\n")
	for _, o := range summary.Outcomes {
		label := o.Feature
		if o.RecordNumber > 0 {
			label = fmt.Sprintf("%s #%d", o.Feature, o.RecordNumber)
		}
		verdict := "failed"
		if o.Passed {
			verdict = "passed"
		}
		fmt.Fprintf(&b, "| [%s](%s) | %s |\n",
			label, featureLink(format.Markdown, o.Feature, o.RecordNumber), verdict)
	}

	return []byte(b.String()), nil
}
