package types

import "time"

// DataRecord identifies one row of a data-driven run. Number is 1-based and
// is used purely for naming and ordering; Values carries the row content for
// display.
type DataRecord struct {
	Number int               `json:"number" yaml:"number"`
	Values map[string]string `json:"values,omitempty" yaml:"values,omitempty"`
}

// FeatureUnit pairs a feature's evaluated spec chain with its optional data
// record. The first spec in the chain is the feature itself; any following
// specs are support (meta) specs it depended on, in dependency order.
type FeatureUnit struct {
	Specs  []*EvaluatedSpec `json:"specs" yaml:"specs"`
	Record *DataRecord      `json:"record,omitempty" yaml:"record,omitempty"`
}

// Feature returns the head of the spec chain, or nil for an empty unit
func (u *FeatureUnit) Feature() *EvaluatedSpec {
	if len(u.Specs) == 0 {
		return nil
	}
	return u.Specs[0]
}

// SupportSpecs returns the tail of the spec chain
func (u *FeatureUnit) SupportSpecs() []*EvaluatedSpec {
	if len(u.Specs) <= 1 {
		return nil
	}
	return u.Specs[1:]
}

// RunInfo describes the run the reports belong to
type RunInfo struct {
	Title     string    `json:"title" yaml:"title"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
}

// UnitOutcome is the aggregate outcome of one feature unit
type UnitOutcome struct {
	Feature      string `json:"feature" yaml:"feature"`
	RecordNumber int    `json:"record_number,omitempty" yaml:"record_number,omitempty"`
	Passed       bool   `json:"passed" yaml:"passed"`
}

// RunSummary aggregates pass/fail statistics for an entire run. A summary
// with zero outcomes is empty and produces no summary file.
type RunSummary struct {
	Total    int           `json:"total" yaml:"total"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Skipped  int           `json:"skipped" yaml:"skipped"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Outcomes []UnitOutcome `json:"outcomes" yaml:"outcomes"`
}

// Empty reports whether the run evaluated zero units
func (s *RunSummary) Empty() bool {
	return s == nil || len(s.Outcomes) == 0
}
