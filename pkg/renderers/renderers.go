// Package renderers provides the built-in rendering capability for each
// report format. A renderer turns one evaluated spec (or the run summary)
// into file content; it may decline an artifact by returning nil content,
// in which case the generator writes nothing.
package renderers

import (
	"path"

	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/naming"
	"github.com/arthur-debert/specreport/pkg/types"
)

// For returns the built-in renderer for the given format
func For(f format.Format) types.Renderer {
	switch f {
	case format.HTML:
		return &htmlRenderer{}
	case format.Slides:
		return &slidesRenderer{}
	case format.Markdown:
		return &markdownRenderer{}
	case format.JSON:
		return &jsonRenderer{}
	case format.XML:
		return &xmlRenderer{}
	default:
		return nil
	}
}

// supportLink returns the href of a support report relative to its parent
// feature report. The layout is fixed: support files always live in the
// support/ subdirectory next to the feature file.
func supportLink(file string) string {
	return path.Join(format.SupportDirName, path.Base(file))
}

// featureLink returns the href of a feature report relative to the
// format's base directory, where the run summary lives.
func featureLink(f format.Format, featureName string, recordNumber int) string {
	prefix := ""
	if recordNumber > 0 {
		prefix = naming.SequencePrefix(recordNumber)
	}
	safe := format.SafeName(featureName)
	return path.Join(safe, prefix+safe+"."+f.Extension())
}

// isSupport reports whether the result being rendered is a support spec of
// the unit rather than the feature itself.
func isSupport(unit types.FeatureUnit, result *types.ReportResult) bool {
	return unit.Feature() != result.Spec
}
