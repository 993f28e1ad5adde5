package generator

import (
	stderrors "errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/filesystem"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/renderers"
	"github.com/arthur-debert/specreport/pkg/types"
)

// Deps carries the collaborators the factory wires into generators. Zero
// values fall back to the OS filesystem, the built-in renderers, the
// wall clock and a disabled logger.
type Deps struct {
	FS        types.FS
	Logger    *zerolog.Logger
	Renderers func(format.Format) types.Renderer
	Now       func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.FS == nil {
		d.FS = filesystem.NewOS()
	}
	if d.Logger == nil {
		nop := zerolog.Nop()
		d.Logger = &nop
	}
	if d.Renderers == nil {
		d.Renderers = renderers.For
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// GeneratorsFor builds the generators for a run. A pre-existing output
// root is renamed to a timestamp-suffixed sibling rather than deleted, so
// prior runs stay inspectable; the root is then recreated fresh. When no
// output root is configured, report generation is a no-op and no
// generators are produced.
func GeneratorsFor(cfg types.RunConfig, deps Deps) ([]*Generator, error) {
	if !cfg.ReportsEnabled() {
		return nil, nil
	}
	deps = deps.withDefaults()

	formats, err := ResolveFormats(cfg.Formats)
	if err != nil {
		return nil, err
	}

	if err := rotateOutputRoot(cfg.OutputRoot, deps); err != nil {
		return nil, err
	}
	if err := deps.FS.MkdirAll(cfg.OutputRoot, dirPerm); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "creating report output root").
			WithDetail("path", cfg.OutputRoot)
	}

	gens := make([]*Generator, 0, len(formats))
	for _, f := range formats {
		gens = append(gens, New(f, cfg, deps.Renderers(f), deps.FS, *deps.Logger))
	}
	return gens, nil
}

// ResolveFormats parses the requested format names, preserving order and
// dropping duplicates. The slideshow companion is inserted immediately
// before the primary HTML format whenever HTML is requested without it:
// the HTML navigation assumes the slide decks exist.
func ResolveFormats(names []string) ([]format.Format, error) {
	var resolved []format.Format
	seen := make(map[format.Format]bool)

	for _, name := range names {
		f, err := format.Parse(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		resolved = append(resolved, f)
	}

	if seen[format.HTML] && !seen[format.Slides] {
		withSlides := make([]format.Format, 0, len(resolved)+1)
		for _, f := range resolved {
			if f == format.HTML {
				withSlides = append(withSlides, format.Slides)
			}
			withSlides = append(withSlides, f)
		}
		resolved = withSlides
	}

	return resolved, nil
}

// rotateOutputRoot moves an existing report root aside under a
// millisecond-timestamp suffix. Prior contents are never touched in
// place; the rotated directory is the audit trail for earlier runs.
func rotateOutputRoot(root string, deps Deps) error {
	if _, err := deps.FS.Stat(root); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, errors.ErrReportRotate, "checking previous report directory").
			WithDetail("path", root)
	}

	rotated := root + "-" + strconv.FormatInt(deps.Now().UnixMilli(), 10)
	if err := deps.FS.Rename(root, rotated); err != nil {
		return errors.Wrap(err, errors.ErrReportRotate, "rotating previous report directory").
			WithDetail("from", root).
			WithDetail("to", rotated)
	}

	deps.Logger.Info().Str("from", root).Str("to", rotated).Msg("Previous reports rotated")
	return nil
}
