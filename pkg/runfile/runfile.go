// Package runfile loads the evaluated-run file the execution engine hands
// over: the feature units it evaluated (spec chains plus optional data
// records) and the aggregate run summary. JSON and YAML encodings are
// supported, selected by file extension.
package runfile

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/types"
)

// Document is the decoded evaluated-run file
type Document struct {
	Run     types.RunInfo       `json:"run" yaml:"run"`
	Units   []types.FeatureUnit `json:"units" yaml:"units"`
	Summary *types.RunSummary   `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Load reads and decodes a run file from the OS filesystem
func Load(fs types.FS, path string) (*Document, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRunFileLoad, "reading run file").
			WithDetail("path", path)
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, errors.Newf(errors.ErrRunFileParse, "unsupported run file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRunFileParse, "decoding run file").
			WithDetail("path", path)
	}

	if doc.Summary == nil {
		doc.Summary = ComputeSummary(doc.Units)
	}
	return &doc, nil
}

// ComputeSummary derives the aggregate summary from the evaluated units,
// for engines that hand over units without a precomputed one.
func ComputeSummary(units []types.FeatureUnit) *types.RunSummary {
	summary := &types.RunSummary{}
	for _, unit := range units {
		feature := unit.Feature()
		if feature == nil {
			continue
		}

		outcome := types.UnitOutcome{
			Feature: feature.Name,
			Passed:  !feature.Failed(),
		}
		if unit.Record != nil {
			outcome.RecordNumber = unit.Record.Number
		}

		summary.Total++
		if outcome.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
	}
	return summary
}
