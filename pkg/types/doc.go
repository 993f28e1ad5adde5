// Package types defines the core types and interfaces used throughout
// specreport. This includes the evaluated-run data model handed over by the
// execution engine (EvaluatedSpec, FeatureUnit, RunSummary) as well as the
// interfaces the report generator is built against (FS, Renderer).
package types
