package renderers

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/types"
)

// xmlRenderer renders machine-readable XML reports
type xmlRenderer struct{}

// RenderDetail renders a feature or support detail document
func (r *xmlRenderer) RenderDetail(run types.RunInfo, unit types.FeatureUnit, result *types.ReportResult, crumbs types.Breadcrumb) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	spec := doc.CreateElement("spec")
	spec.CreateAttr("name", result.Spec.Name)
	spec.CreateAttr("run", run.Title)
	if !isSupport(unit, result) && unit.Record != nil {
		spec.CreateAttr("record", strconv.Itoa(unit.Record.Number))
	}
	if result.Spec.Description != "" {
		spec.CreateElement("description").SetText(result.Spec.Description)
	}

	for _, sc := range result.Spec.Scenarios {
		scenario := spec.CreateElement("scenario")
		scenario.CreateAttr("name", sc.Name)
		for _, st := range sc.Steps {
			step := scenario.CreateElement("step")
			step.CreateAttr("status", string(st.Status))
			step.SetText(st.Text)
			if st.Error != "" {
				step.CreateAttr("error", st.Error)
			}
			for _, att := range st.Attachments {
				a := step.CreateElement("attachment")
				a.CreateAttr("name", att.Name)
			}
		}
	}

	if len(result.Support) > 0 {
		supports := spec.CreateElement("support")
		for _, sup := range result.Support {
			file := sup.File(format.XML.Name())
			if file == "" {
				continue
			}
			ref := supports.CreateElement("ref")
			ref.CreateAttr("name", sup.Spec.Name)
			ref.CreateAttr("file", supportLink(file))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportRender, "rendering xml detail for %s", result.Spec.Name)
	}
	return out, nil
}

// RenderSummary renders the run summary document
func (r *xmlRenderer) RenderSummary(run types.RunInfo, summary *types.RunSummary) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("summary")
	root.CreateAttr("run", run.Title)
	root.CreateAttr("total", strconv.Itoa(summary.Total))
	root.CreateAttr("passed", strconv.Itoa(summary.Passed))
	root.CreateAttr("failed", strconv.Itoa(summary.Failed))
	root.CreateAttr("skipped", strconv.Itoa(summary.Skipped))

	for _, o := range summary.Outcomes {
		unit := root.CreateElement("unit")
		unit.CreateAttr("feature", o.Feature)
		if o.RecordNumber > 0 {
			unit.CreateAttr("record", strconv.Itoa(o.RecordNumber))
		}
		unit.CreateAttr("passed", strconv.FormatBool(o.Passed))
		unit.CreateAttr("file", featureLink(format.XML, o.Feature, o.RecordNumber))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReportRender, "rendering xml summary")
	}
	return out, nil
}
