package types

// Crumb is one entry of a breadcrumb trail: a display label and the report
// file it links to.
type Crumb struct {
	Label string
	File  string
}

// Breadcrumb is a navigation trail from the most specific report up to the
// run summary. It is built per rendering call and never persisted.
type Breadcrumb []Crumb

// ReportResult is the outcome of rendering one spec: the spec itself, the
// files written for it keyed by format name (partial when a format declined
// to render), and the results for its support specs in chain order. Built
// bottom-up so a parent's links always point at files that already exist.
type ReportResult struct {
	Spec    *EvaluatedSpec
	Files   map[string]string
	Support []*ReportResult
}

// NewReportResult creates an empty result for the given spec
func NewReportResult(spec *EvaluatedSpec) *ReportResult {
	return &ReportResult{
		Spec:  spec,
		Files: make(map[string]string),
	}
}

// File returns the file written for the given format name, or "" if the
// format declined to render this spec.
func (r *ReportResult) File(formatName string) string {
	return r.Files[formatName]
}
