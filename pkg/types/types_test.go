package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/specreport/pkg/types"
)

func TestFeatureUnitChainSplit(t *testing.T) {
	feature := &types.EvaluatedSpec{Name: "feature"}
	support1 := &types.EvaluatedSpec{Name: "support1"}
	support2 := &types.EvaluatedSpec{Name: "support2"}

	unit := types.FeatureUnit{Specs: []*types.EvaluatedSpec{feature, support1, support2}}

	assert.Same(t, feature, unit.Feature())
	assert.Equal(t, []*types.EvaluatedSpec{support1, support2}, unit.SupportSpecs())
}

func TestFeatureUnitEmpty(t *testing.T) {
	unit := types.FeatureUnit{}

	assert.Nil(t, unit.Feature())
	assert.Nil(t, unit.SupportSpecs())
}

func TestFeatureUnitNoSupport(t *testing.T) {
	unit := types.FeatureUnit{Specs: []*types.EvaluatedSpec{{Name: "solo"}}}

	assert.NotNil(t, unit.Feature())
	assert.Nil(t, unit.SupportSpecs())
}

func TestSpecAttachmentsDocumentOrder(t *testing.T) {
	spec := &types.EvaluatedSpec{
		Scenarios: []types.Scenario{
			{Steps: []types.Step{
				{Attachments: []types.Attachment{{Name: "a.png"}}},
				{},
				{Attachments: []types.Attachment{{Name: "b.txt"}, {Name: "c.txt"}}},
			}},
			{Steps: []types.Step{
				{Attachments: []types.Attachment{{Name: "d.log"}}},
			}},
		},
	}

	var names []string
	for _, att := range spec.Attachments() {
		names = append(names, att.Name)
	}
	assert.Equal(t, []string{"a.png", "b.txt", "c.txt", "d.log"}, names)
}

func TestSpecFailed(t *testing.T) {
	passed := &types.EvaluatedSpec{
		Scenarios: []types.Scenario{
			{Steps: []types.Step{{Status: types.StepPassed}, {Status: types.StepSkipped}}},
		},
	}
	failed := &types.EvaluatedSpec{
		Scenarios: []types.Scenario{
			{Steps: []types.Step{{Status: types.StepPassed}, {Status: types.StepFailed}}},
		},
	}

	assert.False(t, passed.Failed())
	assert.True(t, failed.Failed())
}

func TestRunSummaryEmpty(t *testing.T) {
	var nilSummary *types.RunSummary
	assert.True(t, nilSummary.Empty())
	assert.True(t, (&types.RunSummary{}).Empty())
	assert.False(t, (&types.RunSummary{Outcomes: []types.UnitOutcome{{}}}).Empty())
}

func TestReportResultFile(t *testing.T) {
	result := types.NewReportResult(&types.EvaluatedSpec{Name: "x"})
	result.Files["html"] = "/reports/html/x/x.html"

	assert.Equal(t, "/reports/html/x/x.html", result.File("html"))
	assert.Equal(t, "", result.File("json"), "declined format has no file")
}

func TestRunConfigReportsEnabled(t *testing.T) {
	assert.False(t, types.RunConfig{}.ReportsEnabled())
	assert.True(t, types.RunConfig{OutputRoot: "reports"}.ReportsEnabled())
}
