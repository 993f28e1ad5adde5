package renderers

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/types"
)

// htmlRenderer renders the primary human-readable format
type htmlRenderer struct{}

type htmlDetailData struct {
	Run     types.RunInfo
	Spec    *types.EvaluatedSpec
	Crumbs  types.Breadcrumb
	Support []htmlSupportEntry
	Failed  bool
}

type htmlSupportEntry struct {
	Name string
	Href string
}

type htmlSummaryData struct {
	Run      types.RunInfo
	Summary  *types.RunSummary
	Features []htmlFeatureEntry
}

type htmlFeatureEntry struct {
	Label  string
	Href   string
	Passed bool
}

var htmlDetailTmpl = template.Must(template.New("detail").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Spec.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
nav.breadcrumbs a { text-decoration: none; }
table { border-collapse: collapse; margin: 1em 0; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
.passed { color: #2a7a2a; }
.failed { color: #b03030; }
.skipped { color: #888; }
.error { font-family: monospace; color: #b03030; }
</style>
</head>
<body>
<nav class="breadcrumbs">{{range $i, $c := .Crumbs}}{{if $i}} &rsaquo; {{end}}<a href="{{$c.File}}">{{$c.Label}}</a>{{end}}</nav>
<h1>{{.Spec.Name}}</h1>
{{if .Spec.Description}}<p>{{.Spec.Description}}</p>{{end}}
{{range .Spec.Scenarios}}
<h2>{{.Name}}</h2>
<table>
<tr><th>Step</th><th>Status</th></tr>
{{range .Steps}}
<tr><td>{{.Text}}{{if .Error}}<div class="error">{{.Error}}</div>{{end}}</td><td class="{{.Status}}">{{.Status}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Support}}
<h2>Support specs</h2>
<ol>
{{range .Support}}<li><a href="{{.Href}}">{{.Name}}</a></li>
{{end}}</ol>
{{end}}
</body>
</html>
`))

var htmlSummaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Run.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
.passed { color: #2a7a2a; }
.failed { color: #b03030; }
</style>
</head>
<body>
<h1>{{.Run.Title}}</h1>
<p>{{.Summary.Passed}} passed, {{.Summary.Failed}} failed, {{.Summary.Skipped}} skipped ({{.Summary.Total}} total)</p>
<table>
<tr><th>Feature</th><th>Result</th></tr>
{{range .Features}}
<tr><td><a href="{{.Href}}">{{.Label}}</a></td>{{if .Passed}}<td class="passed">passed</td>{{else}}<td class="failed">failed</td>{{end}}</tr>
{{end}}
</table>
</body>
</html>
`))

// RenderDetail renders a feature or support detail page
func (r *htmlRenderer) RenderDetail(run types.RunInfo, unit types.FeatureUnit, result *types.ReportResult, crumbs types.Breadcrumb) ([]byte, error) {
	data := htmlDetailData{
		Run:    run,
		Spec:   result.Spec,
		Crumbs: crumbs,
		Failed: result.Spec.Failed(),
	}
	for _, sup := range result.Support {
		file := sup.File(format.HTML.Name())
		if file == "" {
			continue
		}
		data.Support = append(data.Support, htmlSupportEntry{
			Name: sup.Spec.Name,
			Href: supportLink(file),
		})
	}

	var buf bytes.Buffer
	if err := htmlDetailTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportRender, "rendering html detail for %s", result.Spec.Name)
	}
	return buf.Bytes(), nil
}

// RenderSummary renders the run summary index page
func (r *htmlRenderer) RenderSummary(run types.RunInfo, summary *types.RunSummary) ([]byte, error) {
	data := htmlSummaryData{Run: run, Summary: summary}
	for _, o := range summary.Outcomes {
		label := o.Feature
		if o.RecordNumber > 0 {
			label = label + " #" + strconv.Itoa(o.RecordNumber)
		}
		data.Features = append(data.Features, htmlFeatureEntry{
			Label:  label,
			Href:   featureLink(format.HTML, o.Feature, o.RecordNumber),
			Passed: o.Passed,
		})
	}

	var buf bytes.Buffer
	if err := htmlSummaryTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, errors.ErrReportRender, "rendering html summary")
	}
	return buf.Bytes(), nil
}
