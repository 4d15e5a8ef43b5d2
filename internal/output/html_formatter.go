package output

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML page from the markdown report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.GFM))

var htmlTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

func (h HTMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownToHTML.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	title := "Financial simulation"
	if report.Name != "" {
		title += ": " + report.Name
	}
	var buf bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
