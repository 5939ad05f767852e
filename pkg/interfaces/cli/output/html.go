package output

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/vsinha/wallcalc/pkg/application/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

var reportTemplate = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"fixed": func(places int, v float64) string { return fmt.Sprintf("%.*f", places, v) },
	"icon":  severityIcon,
}).ParseFS(templateFS, "templates/report.html"))

// WriteReportHTML renders the printable report document
func WriteReportHTML(w io.Writer, doc dto.ReportDocument) error {
	if err := reportTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
