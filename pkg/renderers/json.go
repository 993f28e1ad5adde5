package renderers

import (
	"encoding/json"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/types"
)

// jsonRenderer renders machine-readable JSON reports
type jsonRenderer struct{}

type jsonDetail struct {
	Run     string               `json:"run"`
	Spec    *types.EvaluatedSpec `json:"spec"`
	Record  *types.DataRecord    `json:"record,omitempty"`
	Support []jsonSupportRef     `json:"support,omitempty"`
}

type jsonSupportRef struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// RenderDetail renders a feature or support detail document
func (r *jsonRenderer) RenderDetail(run types.RunInfo, unit types.FeatureUnit, result *types.ReportResult, crumbs types.Breadcrumb) ([]byte, error) {
	doc := jsonDetail{
		Run:  run.Title,
		Spec: result.Spec,
	}
	if !isSupport(unit, result) {
		doc.Record = unit.Record
	}
	for _, sup := range result.Support {
		file := sup.File(format.JSON.Name())
		if file == "" {
			continue
		}
		doc.Support = append(doc.Support, jsonSupportRef{
			Name: sup.Spec.Name,
			File: supportLink(file),
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportRender, "rendering json detail for %s", result.Spec.Name)
	}
	return append(out, '\n'), nil
}

// RenderSummary renders the run summary document
func (r *jsonRenderer) RenderSummary(run types.RunInfo, summary *types.RunSummary) ([]byte, error) {
	doc := struct {
		Run     types.RunInfo     `json:"run"`
		Summary *types.RunSummary `json:"summary"`
	}{run, summary}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReportRender, "rendering json summary")
	}
	return append(out, '\n'), nil
}
