// Package format defines the closed set of report output formats and their
// path rules: file extension, optional run-summary file, per-format base
// directory, and the placement of feature, support, and attachment files
// inside it. Path computation here is pure; directory creation happens
// explicitly at the call sites in pkg/generator.
package format

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/naming"
	"github.com/arthur-debert/specreport/pkg/types"
)

// Format identifies one report output format. The set is closed: new
// formats are added here, never by ad-hoc string dispatch.
type Format int

// The supported report formats
const (
	// HTML is the primary human-readable format
	HTML Format = iota

	// Slides is the slideshow companion to HTML. It is added automatically
	// whenever HTML is requested.
	Slides

	// Markdown is a plain-text human-readable format
	Markdown

	// JSON is a machine-readable format
	JSON

	// XML is a machine-readable format
	XML
)

// SupportDirName is the subdirectory holding a feature's support reports
const SupportDirName = "support"

// AttachmentsDirName is the subdirectory holding a feature's attachments
const AttachmentsDirName = "attachments"

// All returns every format in declaration order
func All() []Format {
	return []Format{HTML, Slides, Markdown, JSON, XML}
}

// Parse resolves a format name as used in configuration and on the command
// line ("html", "slides", "markdown", "json", "xml").
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html":
		return HTML, nil
	case "slides":
		return Slides, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "xml":
		return XML, nil
	default:
		return 0, errors.Newf(errors.ErrFormatUnknown, "unknown report format %q", name)
	}
}

// Name returns the canonical format name
func (f Format) Name() string {
	switch f {
	case HTML:
		return "html"
	case Slides:
		return "slides"
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer
func (f Format) String() string {
	return f.Name()
}

// Extension returns the file extension for reports in this format, without
// the leading dot.
func (f Format) Extension() string {
	switch f {
	case HTML, Slides:
		return "html"
	case Markdown:
		return "md"
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return ""
	}
}

// SummaryBase returns the base name of the run summary file for this
// format. The second return is false when the format has no run-level
// summary at all (the slideshow navigates through the HTML summary).
func (f Format) SummaryBase() (string, bool) {
	switch f {
	case HTML, Markdown:
		return "index", true
	case JSON, XML:
		return "summary", true
	default:
		return "", false
	}
}

// BaseDir returns this format's report directory under the output root.
// Every format owns a disjoint subtree, so formats never contend for paths.
func (f Format) BaseDir(outputRoot string) string {
	return filepath.Join(outputRoot, f.Name())
}

// SummaryPath returns the run summary file path under the output root, or
// "" when the format defines no summary.
func (f Format) SummaryPath(outputRoot string) string {
	base, ok := f.SummaryBase()
	if !ok {
		return ""
	}
	return filepath.Join(f.BaseDir(outputRoot), base+"."+f.Extension())
}

// FeatureDir returns the directory a feature's report subtree (its own
// file, support/ and attachments/) lives in. All data records of one
// feature share it; the record ordinal appears in the file name, not the
// directory.
func (f Format) FeatureDir(baseDir string, spec *types.EvaluatedSpec, record *types.DataRecord) string {
	return filepath.Join(baseDir, SafeName(spec.Name))
}

// ReportFile returns the exact file path for a spec's rendered report
// inside dir. prefix carries an optional ordering prefix (support sequence
// number); the data record ordinal, when present, is encoded after it.
func (f Format) ReportFile(dir, prefix string, spec *types.EvaluatedSpec, record *types.DataRecord) string {
	name := prefix + naming.RecordPrefix(record) + SafeName(spec.Name) + "." + f.Extension()
	return filepath.Join(dir, name)
}

// SafeName turns a spec name into a file-system safe base name. Path
// separators and whitespace runs collapse to single dashes. The mapping
// is not injective: names that differ only in mapped characters ("A B",
// "A-B", "A/B") share one sanitized name and would land on the same
// paths. The execution engine is expected to keep sanitized names
// distinct within a run.
func SafeName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':':
			return '-'
		case r == ' ' || r == '\t':
			return '-'
		default:
			return r
		}
	}, strings.TrimSpace(name))

	for strings.Contains(mapped, "--") {
		mapped = strings.ReplaceAll(mapped, "--", "-")
	}
	return mapped
}
