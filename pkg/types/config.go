package types

// RunConfig holds the report-generation configuration for one run. An empty
// OutputRoot disables report generation entirely.
type RunConfig struct {
	// OutputRoot is the directory all per-format report trees live under
	OutputRoot string

	// Formats names the requested output formats. The factory may add
	// companion formats on top of these.
	Formats []string

	// Title overrides the run title shown in reports
	Title string
}

// ReportsEnabled reports whether report generation is configured at all
func (c RunConfig) ReportsEnabled() bool {
	return c.OutputRoot != ""
}
