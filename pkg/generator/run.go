package generator

import (
	"github.com/arthur-debert/specreport/pkg/types"
)

// UnitError records a feature unit whose report could not be written for
// one format. A failed unit never aborts its siblings.
type UnitError struct {
	Format  string
	Feature string
	Err     error
}

// RunReport is the outcome of generating all reports for a run
type RunReport struct {
	// SummaryFiles maps format name to the written summary file
	SummaryFiles map[string]string

	// FeatureFiles maps format name to the written feature files, in
	// unit order
	FeatureFiles map[string][]string

	// Errors lists the units that failed, per format
	Errors []UnitError
}

// Failed reports whether any unit's report failed to generate
func (r *RunReport) Failed() bool {
	return len(r.Errors) > 0
}

// Generate writes every report for the run: per generator, the run summary
// followed by each feature unit's detail tree. Summary and unit writes for
// one format stay strictly ordered; a write failure is recorded and the
// remaining units still get their reports.
func Generate(gens []*Generator, run types.RunInfo, units []types.FeatureUnit, summary *types.RunSummary) *RunReport {
	report := &RunReport{
		SummaryFiles: make(map[string]string),
		FeatureFiles: make(map[string][]string),
	}

	for _, g := range gens {
		name := g.Format().Name()

		if path, err := g.RenderRunSummary(run, summary); err != nil {
			g.logger.Error().Err(err).Msg("Run summary failed")
			report.Errors = append(report.Errors, UnitError{Format: name, Feature: "", Err: err})
		} else if path != "" {
			report.SummaryFiles[name] = path
		}

		for _, unit := range units {
			path, err := g.RenderFeatureDetail(run, unit)
			if err != nil {
				feature := ""
				if f := unit.Feature(); f != nil {
					feature = f.Name
				}
				g.logger.Error().Err(err).Str("feature", feature).Msg("Feature report failed")
				report.Errors = append(report.Errors, UnitError{Format: name, Feature: feature, Err: err})
				continue
			}
			if path != "" {
				report.FeatureFiles[name] = append(report.FeatureFiles[name], path)
			}
		}
	}

	return report
}
