package renderers

import (
	"bytes"
	"html/template"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/types"
)

// slidesRenderer renders the slideshow companion to the HTML format: one
// slide per scenario, stepped through with the arrow keys. It renders
// feature specs only; support detail and the run summary are left to the
// HTML format it accompanies.
type slidesRenderer struct{}

var slidesTmpl = template.Must(template.New("slides").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Spec.Name}}</title>
<style>
body { font-family: sans-serif; margin: 0; background: #1b1b1b; color: #eee; }
section.slide { display: none; padding: 4em; min-height: 80vh; }
section.slide.active { display: block; }
h1, h2 { color: #fff; }
ul.steps { font-size: 1.2em; line-height: 1.8; }
.passed::before { content: "✓ "; color: #6c6; }
.failed::before { content: "✗ "; color: #e66; }
.skipped::before { content: "– "; color: #999; }
footer { position: fixed; bottom: 1em; right: 2em; color: #777; }
</style>
</head>
<body>
<section class="slide active">
<h1>{{.Spec.Name}}</h1>
{{if .Spec.Description}}<p>{{.Spec.Description}}</p>{{end}}
</section>
{{range .Spec.Scenarios}}
<section class="slide">
<h2>{{.Name}}</h2>
<ul class="steps">
{{range .Steps}}<li class="{{.Status}}">{{.Text}}</li>
{{end}}</ul>
</section>
{{end}}
<footer>{{.Run.Title}}</footer>
<script>
var slides = document.querySelectorAll('section.slide');
var current = 0;
document.addEventListener('keydown', function (e) {
  if (e.key === 'ArrowRight' && current < slides.length - 1) { current++; }
  else if (e.key === 'ArrowLeft' && current > 0) { current--; }
  else { return; }
  slides.forEach(function (s, i) { s.classList.toggle('active', i === current); });
});
</script>
</body>
</html>
`))

// RenderDetail renders a slide deck for feature specs and declines support
// specs.
func (r *slidesRenderer) RenderDetail(run types.RunInfo, unit types.FeatureUnit, result *types.ReportResult, crumbs types.Breadcrumb) ([]byte, error) {
	if isSupport(unit, result) {
		return nil, nil
	}

	var buf bytes.Buffer
	data := struct {
		Run  types.RunInfo
		Spec *types.EvaluatedSpec
	}{run, result.Spec}
	if err := slidesTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrReportRender, "rendering slides for %s", result.Spec.Name)
	}
	return buf.Bytes(), nil
}

// RenderSummary declines: the slideshow has no run-level summary
func (r *slidesRenderer) RenderSummary(run types.RunInfo, summary *types.RunSummary) ([]byte, error) {
	return nil, nil
}
