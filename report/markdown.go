package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var markdownTemplate = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"fence": fence,
}).Parse(`# Fixture Run Report

| Program | Lines | Duration |
|---------|------:|---------:|
{{- range .Results}}
| {{.Program}} | {{.Lines}} | {{.Duration}} |
{{- end}}
{{range .Results}}
## {{.Program}}

{{if .Output -}}
{{fence .Output}}
{{- else -}}
_No output._
{{- end}}
{{end}}`))

// WriteMarkdown renders the report as markdown.
func WriteMarkdown(r *Report) string {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, r); err != nil {
		return fmt.Sprintf("failed to render report: %v\n", err)
	}
	return buf.String()
}

// fence wraps output in a code fence that the output cannot close.
func fence(output string) string {
	marker := "```"
	for strings.Contains(output, marker) {
		marker += "`"
	}
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	return marker + "text\n" + output + marker
}
