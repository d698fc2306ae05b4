package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/data-reports/pkg/models/domain"
)

// Sections are separated by one blank line; a section title, when set, is printed above its lines.
const reportTemplate = `{{if .Title}}{{.Title}}
{{end}}{{range $i, $s := .Sections}}{{if $i}}
{{end}}{{if $s.Title}}{{$s.Title}}
{{end}}{{range $s.Lines}}{{.}}
{{end}}{{end}}`

// Reporter turns a domain.Report into the ordered lines of its text form.
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Render executes the report template and returns the lines without trailing newline.
func (c *Reporter) Render(report *domain.Report) ([]string, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	text := strings.TrimSuffix(buf.String(), "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// Handle renders the report and writes it to the reporter's writer.
func (c *Reporter) Handle(report *domain.Report) error {
	lines, err := c.Render(report)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(c.writer, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
