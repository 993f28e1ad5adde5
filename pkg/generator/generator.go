package generator

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/naming"
	"github.com/arthur-debert/specreport/pkg/types"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Generator writes the report tree for one output format. All writes stay
// inside the format's base directory, so generators for different formats
// never contend for paths.
type Generator struct {
	format   format.Format
	cfg      types.RunConfig
	renderer types.Renderer
	fs       types.FS
	logger   zerolog.Logger
}

// New creates a generator for one format. The logger is injected so the
// core carries no process-wide logging state.
func New(f format.Format, cfg types.RunConfig, renderer types.Renderer, filesystem types.FS, logger zerolog.Logger) *Generator {
	return &Generator{
		format:   f,
		cfg:      cfg,
		renderer: renderer,
		fs:       filesystem,
		logger:   logger.With().Str("format", f.Name()).Logger(),
	}
}

// Format returns the format this generator writes
func (g *Generator) Format() format.Format {
	return g.format
}

// RenderRunSummary writes the run summary file for this format. It returns
// the written path, or "" when the format has no summary concept, the
// summary is empty, or the renderer declined. Re-invoking for the same run
// overwrites the same path.
func (g *Generator) RenderRunSummary(run types.RunInfo, summary *types.RunSummary) (string, error) {
	path := g.format.SummaryPath(g.cfg.OutputRoot)
	if path == "" || summary.Empty() {
		return "", nil
	}

	content, err := g.renderer.RenderSummary(run, summary)
	if err != nil {
		return "", err
	}
	if content == nil {
		return "", nil
	}

	if err := g.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "creating summary directory for %s", g.format).
			WithDetail("path", filepath.Dir(path))
	}
	if err := g.fs.WriteFile(path, content, filePerm); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "writing run summary").
			WithDetail("path", path)
	}

	g.logger.Info().Str("path", path).Msg("Run summary written")
	return path, nil
}

// RenderFeatureDetail writes the detail report for one feature unit: its
// support-spec reports first (so the feature file can link to them), then
// the feature file itself, then the attachments its steps produced. It
// returns the feature file path, or "" when the renderer declined the
// feature for this format.
func (g *Generator) RenderFeatureDetail(run types.RunInfo, unit types.FeatureUnit) (string, error) {
	feature := unit.Feature()
	if feature == nil {
		return "", nil
	}

	base := g.format.BaseDir(g.cfg.OutputRoot)
	dir := g.format.FeatureDir(base, feature, unit.Record)
	featureFile := g.format.ReportFile(dir, "", feature, unit.Record)

	supportResults, err := g.renderSupportDetail(run, unit, featureFile)
	if err != nil {
		return "", err
	}

	result := types.NewReportResult(feature)
	result.Support = supportResults

	content, err := g.renderer.RenderDetail(run, unit, result, g.breadcrumb(dir, featureFile, feature))
	if err != nil {
		return "", err
	}
	if content == nil {
		g.logger.Debug().Str("feature", feature.Name).Msg("Feature detail declined")
		return "", nil
	}

	if err := g.fs.MkdirAll(dir, dirPerm); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "creating report directory for %s", feature.Name).
			WithDetail("path", dir)
	}
	if err := g.fs.WriteFile(featureFile, content, filePerm); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "writing feature report for %s", feature.Name).
			WithDetail("path", featureFile)
	}
	result.Files[g.format.Name()] = featureFile

	if err := g.copyAttachments(feature, featureFile); err != nil {
		return "", err
	}

	g.logger.Info().Str("feature", feature.Name).Str("path", featureFile).Msg("Feature report written")
	return featureFile, nil
}

// renderSupportDetail writes one report per support spec under the
// feature's support/ subdirectory, numbered in chain order so a directory
// listing reproduces dependency order. A declined render is skipped
// without error; the subdirectory is only created once something is
// actually written.
func (g *Generator) renderSupportDetail(run types.RunInfo, unit types.FeatureUnit, featureFile string) ([]*types.ReportResult, error) {
	supports := unit.SupportSpecs()
	if len(supports) == 0 {
		return nil, nil
	}

	supportDir := filepath.Join(filepath.Dir(featureFile), format.SupportDirName)
	crumbs := g.breadcrumb(supportDir, featureFile, unit.Feature())

	results := make([]*types.ReportResult, 0, len(supports))
	for i, spec := range supports {
		result := types.NewReportResult(spec)

		content, err := g.renderer.RenderDetail(run, unit, result, crumbs)
		if err != nil {
			return nil, err
		}
		if content != nil {
			path := g.format.ReportFile(supportDir, naming.SequencePrefix(i+1), spec, nil)
			if err := g.fs.MkdirAll(supportDir, dirPerm); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDirCreate, "creating support directory for %s", spec.Name).
					WithDetail("path", supportDir)
			}
			if err := g.fs.WriteFile(path, content, filePerm); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileWrite, "writing support report for %s", spec.Name).
					WithDetail("path", path)
			}
			result.Files[g.format.Name()] = path
			g.logger.Debug().Str("support", spec.Name).Str("path", path).Msg("Support report written")
		}

		results = append(results, result)
	}

	return results, nil
}

// copyAttachments copies every attachment referenced by the spec's steps
// into an attachments/ directory next to the report file, keeping original
// file names. The directory only exists when there is at least one
// attachment. A name collision within one feature overwrites; the
// execution engine is expected to keep attachment names unique per
// feature.
func (g *Generator) copyAttachments(spec *types.EvaluatedSpec, reportFile string) error {
	attachments := spec.Attachments()
	if len(attachments) == 0 {
		return nil
	}

	dir := filepath.Join(filepath.Dir(reportFile), format.AttachmentsDirName)
	if err := g.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating attachments directory for %s", spec.Name).
			WithDetail("path", dir)
	}

	for _, att := range attachments {
		data, err := g.fs.ReadFile(att.Source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrAttachmentCopy, "reading attachment %s", att.Name).
				WithDetail("source", att.Source)
		}

		dest := filepath.Join(dir, att.Name)
		if _, statErr := g.fs.Stat(dest); statErr == nil {
			g.logger.Debug().Str("attachment", att.Name).Msg("Attachment name collision, overwriting")
		}
		if err := g.fs.WriteFile(dest, data, filePerm); err != nil {
			return errors.Wrapf(err, errors.ErrAttachmentCopy, "copying attachment %s", att.Name).
				WithDetail("path", dest)
		}
	}

	g.logger.Debug().Int("count", len(attachments)).Str("dir", dir).Msg("Attachments copied")
	return nil
}

// breadcrumb builds the navigation trail for a report written under
// fromDir: the run summary (when this format has one) followed by the
// feature. Support reports use the same trail as the feature itself; they
// are siblings of the feature, not children of each other.
func (g *Generator) breadcrumb(fromDir, featureFile string, feature *types.EvaluatedSpec) types.Breadcrumb {
	var crumbs types.Breadcrumb

	if summaryPath := g.format.SummaryPath(g.cfg.OutputRoot); summaryPath != "" {
		if rel, err := filepath.Rel(fromDir, summaryPath); err == nil {
			crumbs = append(crumbs, types.Crumb{Label: "Summary", File: rel})
		}
	}
	if rel, err := filepath.Rel(fromDir, featureFile); err == nil {
		crumbs = append(crumbs, types.Crumb{Label: feature.Name, File: rel})
	}

	return crumbs
}
