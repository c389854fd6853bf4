package render

import (
	"bytes"
	"html/template"

	"resume-studio/internal/model"
)

// PageWidthPx is the static document's nominal width: A4 at 96 DPI.
const PageWidthPx = 794

// ExportRootID is the element the capture backend screenshots. The
// orchestrator aborts if the rendered page is missing it.
const ExportRootID = "resume-export-root"

var staticDoc = template.Must(template.New("static").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
html, body { margin: 0; padding: 0; background: #ffffff; }
#` + ExportRootID + ` { width: {{.Width}}px; min-height: 1122px; margin: 0 auto; }
{{.BaseCSS}}
</style>
{{if .CustomCSS}}<style>{{.CustomCSS}}</style>{{end}}
</head>
<body>
{{.Fragment}}
</body>
</html>
`))

// Static renders the export source document: a standalone page at the fixed
// A4-proportioned width, same resolver tokens as the interactive path, no
// edit affordances, empty sections omitted.
func Static(data model.ResumeData, opts model.EnhancedTemplateOptions) (string, error) {
	w := newBuilder(data, opts, ModeStatic)
	frag := w.fragment(ExportRootID)

	title := data.PersonalInfo.Name
	if title == "" {
		title = "Resume"
	}

	var buf bytes.Buffer
	err := staticDoc.Execute(&buf, map[string]interface{}{
		"Title":     title,
		"Width":     PageWidthPx,
		"BaseCSS":   template.CSS(baseCSS),
		"CustomCSS": template.CSS(w.opts.CustomCSS),
		"Fragment":  template.HTML(frag),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
