package renderers_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/renderers"
	"github.com/arthur-debert/specreport/pkg/types"
)

func spec(name string) *types.EvaluatedSpec {
	return &types.EvaluatedSpec{
		Name: name,
		Scenarios: []types.Scenario{
			{
				Name: "scenario one",
				Steps: []types.Step{
					{Text: "first step", Status: types.StepPassed},
					{Text: "second step", Status: types.StepFailed, Error: "boom"},
				},
			},
		},
	}
}

func unitWithSupport() (types.FeatureUnit, *types.ReportResult) {
	feature := spec("Feature Spec")
	support := spec("Helper Spec")

	unit := types.FeatureUnit{Specs: []*types.EvaluatedSpec{feature, support}}

	supportResult := types.NewReportResult(support)
	for _, f := range format.All() {
		supportResult.Files[f.Name()] = "0001-Helper-Spec." + f.Extension()
	}

	result := types.NewReportResult(feature)
	result.Support = []*types.ReportResult{supportResult}
	return unit, result
}

func run() types.RunInfo {
	return types.RunInfo{Title: "render test"}
}

func crumbs() types.Breadcrumb {
	return types.Breadcrumb{
		{Label: "Summary", File: "../index.html"},
		{Label: "Feature Spec", File: "Feature-Spec.html"},
	}
}

func summary() *types.RunSummary {
	return &types.RunSummary{
		Total: 2, Passed: 1, Failed: 1,
		Outcomes: []types.UnitOutcome{
			{Feature: "Feature Spec", Passed: true},
			{Feature: "Data Spec", RecordNumber: 7, Passed: false},
		},
	}
}

func TestHTMLDetail(t *testing.T) {
	unit, result := unitWithSupport()

	out, err := renderers.For(format.HTML).RenderDetail(run(), unit, result, crumbs())
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "<h1>Feature Spec</h1>")
	assert.Contains(t, content, "first step")
	assert.Contains(t, content, "boom")
	assert.Contains(t, content, `href="../index.html">Summary</a>`)
	assert.Contains(t, content, `href="support/0001-Helper-Spec.html"`)
}

func TestHTMLSummaryLinksFeatures(t *testing.T) {
	out, err := renderers.For(format.HTML).RenderSummary(run(), summary())
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, `href="Feature-Spec/Feature-Spec.html"`)
	// Data-driven units link through their record-prefixed file
	assert.Contains(t, content, `href="Data-Spec/0007-Data-Spec.html"`)
	assert.Contains(t, content, "1 passed, 1 failed")
}

func TestSlidesDetailFeatureOnly(t *testing.T) {
	unit, result := unitWithSupport()
	r := renderers.For(format.Slides)

	out, err := r.RenderDetail(run(), unit, result, crumbs())
	require.NoError(t, err)
	assert.Contains(t, string(out), "section class=\"slide\"")

	// Rendering the support spec of the unit is declined
	supportResult := result.Support[0]
	out, err = r.RenderDetail(run(), unit, supportResult, crumbs())
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSlidesSummaryDeclined(t *testing.T) {
	out, err := renderers.For(format.Slides).RenderSummary(run(), summary())
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMarkdownDetail(t *testing.T) {
	unit, result := unitWithSupport()

	out, err := renderers.For(format.Markdown).RenderDetail(run(), unit, result, crumbs())
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "[Summary](../index.html)"))
	assert.Contains(t, content, "# Feature Spec")
	assert.Contains(t, content, "- [x] first step")
	assert.Contains(t, content, "- [!] second step")
	assert.Contains(t, content, "[Helper Spec](support/0001-Helper-Spec.md)")
}

func TestJSONDetailRoundTrips(t *testing.T) {
	unit, result := unitWithSupport()

	out, err := renderers.For(format.JSON).RenderDetail(run(), unit, result, nil)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "render test", decoded["run"])

	specDoc, ok := decoded["spec"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Feature Spec", specDoc["name"])
}

func TestXMLDetailParses(t *testing.T) {
	unit, result := unitWithSupport()

	out, err := renderers.For(format.XML).RenderDetail(run(), unit, result, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "spec", root.Tag)
	assert.Equal(t, "Feature Spec", root.SelectAttrValue("name", ""))

	steps := root.FindElements("//step")
	assert.Len(t, steps, 2)
	assert.Equal(t, "failed", steps[1].SelectAttrValue("status", ""))
}

func TestXMLSummaryParses(t *testing.T) {
	out, err := renderers.For(format.XML).RenderSummary(run(), summary())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	units := doc.FindElements("//unit")
	require.Len(t, units, 2)
	assert.Equal(t, "7", units[1].SelectAttrValue("record", ""))
}
