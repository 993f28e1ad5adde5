package types

import "io/fs"

// FS abstracts filesystem operations for testability
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}

// Renderer turns evaluated test content into the bytes of one report file.
// It is the pluggable per-format rendering capability: returning nil content
// with a nil error means the format declines to render this artifact, and
// nothing is written.
type Renderer interface {
	// RenderDetail renders the detail report for one spec of a feature unit.
	// The result carries the already-written files for the spec's support
	// chain so the output can link to them.
	RenderDetail(run RunInfo, unit FeatureUnit, result *ReportResult, crumbs Breadcrumb) ([]byte, error)

	// RenderSummary renders the run-level summary report.
	RenderSummary(run RunInfo, summary *RunSummary) ([]byte, error)
}
